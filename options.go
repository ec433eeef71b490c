package eglconfig

// Option configures a Selector during creation.
//
// Example:
//
//	sel := eglconfig.New(req, eglconfig.WithRejectHook(func(r eglconfig.Rejection) {
//	    log.Println(r)
//	}))
type Option func(*selectorOptions)

// selectorOptions holds optional configuration for Selector creation.
type selectorOptions struct {
	onReject    func(Rejection)
	keepRejects bool
}

// defaultOptions returns the default selector options.
func defaultOptions() selectorOptions {
	return selectorOptions{
		keepRejects: true,
	}
}

// WithRejectHook registers fn to be called for every rejected configuration
// with the first check it failed. fn runs synchronously inside Select.
func WithRejectHook(fn func(Rejection)) Option {
	return func(o *selectorOptions) {
		o.onReject = fn
	}
}

// WithoutRejections stops Select from collecting rejections into the
// returned NoMatchError. Useful for providers with many configurations.
func WithoutRejections() Option {
	return func(o *selectorOptions) {
		o.keepRejects = false
	}
}
