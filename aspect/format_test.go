package aspect

import (
	"errors"
	"testing"
	"time"
)

type celsius float64

type stringName string

func (stringName) TypeName() string { return "String" }

type brokenName struct{}

func (brokenName) TypeName() string { panic("no name") }

func finished(cfg Config, args []any, result any, err error) *Invocation {
	inv := newInvocation(Site{"Foo", "greet"}, cfg, args)
	start := time.UnixMilli(1_000)

	inv.begin(start)

	if err != nil {
		inv.fail(start.Add(7*time.Millisecond), err)
	} else {
		inv.complete(start.Add(7*time.Millisecond), result)
	}

	return inv
}

func TestFormatter_Entry(t *testing.T) {
	args := []any{"Ada", 3}

	tests := []struct {
		name   string
		cfg    Config
		legacy bool
		want   string
	}{
		{"all", Default(), false, "Foo.greet(string Ada, int 3)\n"},
		{"no types", Default(LogParamTypes(false)), false, "Foo.greet(Ada, 3)\n"},
		{"no class", Default(LogClass(false)), false, "greet(string Ada, int 3)\n"},
		{"no params", Default(LogParams(false)), false, "Foo.greet()\n"},
		{"types without params", Default(LogParams(false), LogParamTypes(true)), false, "Foo.greet()\n"},
		{"no method balanced", Default(LogMethod(false)), false, "Foo.(string Ada, int 3)\n"},
		{"no method legacy", Default(LogMethod(false)), true, "Foo.string Ada, int 3)\n"},
		{"no params legacy", Default(LogParams(false)), true, "Foo.greet()\n"},
		{"class only balanced", Disabled(LogClass(true)), false, "Foo.\n"},
		{"class only legacy", Disabled(LogClass(true)), true, "Foo.)\n"},
		{"nothing balanced", Disabled(), false, "\n"},
		{"nothing legacy", Disabled(), true, ")\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := formatter{style: plainPalette(), legacyParens: tt.legacy}

			got := string(f.entry(newInvocation(Site{"Foo", "greet"}, tt.cfg, args)))
			if got != tt.want {
				t.Errorf("entry() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatter_Entry_NoArguments(t *testing.T) {
	f := formatter{style: plainPalette()}

	got := string(f.entry(newInvocation(Site{"Clock", "Now"}, Default(), nil)))
	if got != "Clock.Now()\n" {
		t.Errorf("entry() = %q", got)
	}
}

func TestFormatter_Success(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		result any
		want   string
	}{
		{
			name:   "all",
			cfg:    Default(),
			result: "hi Ada",
			want:   "Foo.greet(string Ada) -> string result=hi Ada, time=7ms\n",
		},
		{
			name:   "no types",
			cfg:    Default(LogParamTypes(false), LogResultType(false)),
			result: "hi Ada",
			want:   "Foo.greet(Ada) -> result=hi Ada, time=7ms\n",
		},
		{
			name:   "no result",
			cfg:    Default(LogResult(false)),
			result: "hi Ada",
			want:   "Foo.greet(string Ada) -> , time=7ms\n",
		},
		{
			name:   "no time",
			cfg:    Default(LogTime(false)),
			result: "hi Ada",
			want:   "Foo.greet(string Ada) -> string result=hi Ada\n",
		},
		{
			name:   "nil result",
			cfg:    Default(),
			result: nil,
			want:   "Foo.greet(string Ada) -> null result=null, time=7ms\n",
		},
		{
			name:   "qualified result type",
			cfg:    Default(),
			result: celsius(21.5),
			want: "Foo.greet(string Ada) -> " +
				"github.com/ardnew/calltrace/aspect.celsius result=21.5, time=7ms\n",
		},
		{
			name:   "nothing",
			cfg:    Disabled(),
			result: "hi Ada",
			want:   " -> \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := formatter{style: plainPalette()}

			got := string(f.success(finished(tt.cfg, []any{"Ada"}, tt.result, nil)))
			if got != tt.want {
				t.Errorf("success() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatter_Failure(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "no types",
			cfg:  Default(LogParamTypes(false), LogResultType(false)),
			want: "Foo.greet(Ada) -> exception=boom, time=7ms\n",
		},
		{
			name: "result flags ignored",
			cfg:  Default(LogResult(false), LogResultType(false)),
			want: "Foo.greet(string Ada) -> exception=boom, time=7ms\n",
		},
		{
			name: "no time",
			cfg:  Default(LogTime(false)),
			want: "Foo.greet(string Ada) -> exception=boom\n",
		},
		{
			name: "nothing",
			cfg:  Disabled(),
			want: " -> exception=boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := formatter{style: plainPalette()}

			got := string(f.failure(finished(tt.cfg, []any{"Ada"}, nil, boom)))
			if got != tt.want {
				t.Errorf("failure() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatter_NilArguments(t *testing.T) {
	var (
		ptr *int
		m   map[string]int
		s   []byte
		fn  func()
		err error
	)

	f := formatter{style: plainPalette()}
	inv := newInvocation(Site{"Foo", "put"}, Default(), []any{nil, ptr, m, s, fn, err})

	want := "Foo.put(null null, null null, null null, null null, null null, null null)\n"
	if got := string(f.entry(inv)); got != want {
		t.Errorf("entry() = %q, want %q", got, want)
	}
}

func TestTypeNames(t *testing.T) {
	tests := []struct {
		name       string
		v          any
		argType    string
		resultType string
	}{
		{"string", "x", "string", "string"},
		{"int", 1, "int", "int"},
		{"named", celsius(1), "celsius", "github.com/ardnew/calltrace/aspect.celsius"},
		{"pointer", new(celsius), "*aspect.celsius", "*aspect.celsius"},
		{"slice", []string{"a"}, "[]string", "[]string"},
		{"error", errors.New("e"), "*errors.errorString", "*errors.errorString"},
		{"type namer", stringName("Ada"), "String", "String"},
		{"broken type namer", brokenName{}, "brokenName", "github.com/ardnew/calltrace/aspect.brokenName"},
		{"nil", nil, "null", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := argTypeName(tt.v); got != tt.argType {
				t.Errorf("argTypeName = %q, want %q", got, tt.argType)
			}

			if got := resultTypeName(tt.v); got != tt.resultType {
				t.Errorf("resultTypeName = %q, want %q", got, tt.resultType)
			}
		})
	}
}

func TestElapsed_MillisecondResolution(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int64
	}{
		{"same", time.UnixMilli(5), time.UnixMilli(5), 0},
		{"sub-millisecond across tick", time.Unix(0, 999_900), time.Unix(0, 1_000_100), 1},
		{"sub-millisecond within tick", time.Unix(0, 1_000_100), time.Unix(0, 1_999_900), 0},
		{"backwards", time.UnixMilli(9), time.UnixMilli(5), 0},
		{"seconds", time.UnixMilli(0), time.UnixMilli(2_500), 2_500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &Invocation{Start: tt.start, End: tt.end}
			if got := inv.Elapsed(); got != tt.want {
				t.Errorf("Elapsed() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	for _, mode := range []ColorMode{ColorNever, ColorAuto, ColorAlways} {
		if got := ParseColorMode(mode.String()); got != mode {
			t.Errorf("ParseColorMode(%q) = %v", mode.String(), got)
		}
	}

	if got := ParseColorMode("rainbow"); got != ColorNever {
		t.Errorf("ParseColorMode(rainbow) = %v", got)
	}
}
