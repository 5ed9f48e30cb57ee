// Package factory defines the provider contract through which components
// expose named factories to a registry, plus a generic single-factory
// implementation of that contract. A provider advertises its factory names,
// the instance tags each factory understands, and constructs instances from
// instance descriptors.
//
// Example usage:
//
//	f := factory.New[io.Reader]("App.ReaderFactory")
//	_ = f.Register("buffer", func() (io.Reader, error) {
//	    return &bytes.Buffer{}, nil
//	})
//	r, err := f.CreateInstance(descriptor.New("App.ReaderFactory", "buffer", ""))
package factory
