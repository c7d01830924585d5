package errors

// Convenience functions for common error patterns. All of them mark the
// result as an invalid-configuration failure.

func ConfigNotFound(path string) *SiteError {
	e := New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
	e.invalid = true
	return e
}

func ConfigUnreadable(path string, cause error) *SiteError {
	e := Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to read configuration file").
		WithContext("path", path)
	e.invalid = true
	return e
}

func ConfigMalformed(cause error) *SiteError {
	e := Wrap(cause, CategoryConfig, SeverityFatal, "malformed configuration")
	e.invalid = true
	return e
}

func ValidationFailed(cause error) *SiteError {
	e := Wrap(cause, CategoryValidation, SeverityFatal, "configuration validation failed")
	e.invalid = true
	return e
}

// InvalidConfiguration marks an arbitrary cause as an invalid-configuration failure.
func InvalidConfiguration(message string, cause error) *SiteError {
	e := Wrap(cause, CategoryConfig, SeverityFatal, message)
	e.invalid = true
	return e
}

// Emit errors

func EmitFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to write generator configuration").
		WithContext("path", path)
}

func InternalError(message string, cause error) *SiteError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
