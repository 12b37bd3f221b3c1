package aspect

// The wrappers below return a callable with the same signature as fn that
// routes every call through [Interceptor.Invoke] under site. Arguments are
// logged in declaration order. Error-only callables log a null result.

// Func0 wraps a nullary callable.
func Func0[R any](ic *Interceptor, site Site, fn func() (R, error)) func() (R, error) {
	return func() (R, error) {
		var r R

		_, err := ic.Invoke(site, nil, func() (any, error) {
			var err error
			r, err = fn()

			return r, err
		})

		return r, err
	}
}

// Func1 wraps a unary callable.
func Func1[A, R any](ic *Interceptor, site Site, fn func(A) (R, error)) func(A) (R, error) {
	return func(a A) (R, error) {
		var r R

		_, err := ic.Invoke(site, []any{a}, func() (any, error) {
			var err error
			r, err = fn(a)

			return r, err
		})

		return r, err
	}
}

// Func2 wraps a binary callable.
func Func2[A, B, R any](ic *Interceptor, site Site, fn func(A, B) (R, error)) func(A, B) (R, error) {
	return func(a A, b B) (R, error) {
		var r R

		_, err := ic.Invoke(site, []any{a, b}, func() (any, error) {
			var err error
			r, err = fn(a, b)

			return r, err
		})

		return r, err
	}
}

// Func3 wraps a ternary callable.
func Func3[A, B, C, R any](ic *Interceptor, site Site, fn func(A, B, C) (R, error)) func(A, B, C) (R, error) {
	return func(a A, b B, c C) (R, error) {
		var r R

		_, err := ic.Invoke(site, []any{a, b, c}, func() (any, error) {
			var err error
			r, err = fn(a, b, c)

			return r, err
		})

		return r, err
	}
}

// Proc0 wraps a nullary error-only callable.
func Proc0(ic *Interceptor, site Site, fn func() error) func() error {
	return func() error {
		_, err := ic.Invoke(site, nil, func() (any, error) {
			return nil, fn()
		})

		return err
	}
}

// Proc1 wraps a unary error-only callable.
func Proc1[A any](ic *Interceptor, site Site, fn func(A) error) func(A) error {
	return func(a A) error {
		_, err := ic.Invoke(site, []any{a}, func() (any, error) {
			return nil, fn(a)
		})

		return err
	}
}

// Proc2 wraps a binary error-only callable.
func Proc2[A, B any](ic *Interceptor, site Site, fn func(A, B) error) func(A, B) error {
	return func(a A, b B) error {
		_, err := ic.Invoke(site, []any{a, b}, func() (any, error) {
			return nil, fn(a, b)
		})

		return err
	}
}
