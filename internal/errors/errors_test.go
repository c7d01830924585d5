package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SiteError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.err.Error())
		})
	}
}

func TestSiteError_WithContext(t *testing.T) {
	err := New(CategoryValidation, SeverityWarning, "bad locale").
		WithContext("locale", "/zh-cn/").
		WithContext("field", "lang")

	require.NotNil(t, err.Context)
	assert.Equal(t, "/zh-cn/", err.Context["locale"])
	assert.Equal(t, "lang", err.Context["field"])
}

func TestLoaderErrorsMatchSentinel(t *testing.T) {
	cases := map[string]error{
		"not found":  ConfigNotFound("missing.yaml"),
		"unreadable": ConfigUnreadable("x.yaml", fmt.Errorf("permission denied")),
		"malformed":  ConfigMalformed(fmt.Errorf("yaml: line 3")),
		"validation": ValidationFailed(fmt.Errorf("locale key must end with /")),
		"wrapped":    fmt.Errorf("load: %w", ConfigMalformed(fmt.Errorf("boom"))),
	}
	for name, err := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, stderrors.Is(err, ErrInvalidConfiguration))
		})
	}

	assert.False(t, stderrors.Is(EmitFailed("out.json", fmt.Errorf("disk full")), ErrInvalidConfiguration))
}

func TestIsCategory(t *testing.T) {
	configErr := ConfigNotFound("siteconf.yaml")
	wrapped := fmt.Errorf("outer: %w", ValidationFailed(fmt.Errorf("inner")))

	assert.True(t, IsCategory(configErr, CategoryConfig))
	assert.False(t, IsCategory(configErr, CategoryValidation))
	assert.True(t, IsCategory(wrapped, CategoryValidation))
	assert.False(t, IsCategory(fmt.Errorf("plain"), CategoryConfig))
	assert.Equal(t, CategoryInternal, GetCategory(fmt.Errorf("plain")))
}

func TestExitCodeFor(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)
	assert.Equal(t, 0, a.ExitCodeFor(nil))
	assert.Equal(t, 1, a.ExitCodeFor(fmt.Errorf("plain")))
	assert.Equal(t, 7, a.ExitCodeFor(ConfigNotFound("x")))
	assert.Equal(t, 2, a.ExitCodeFor(ValidationFailed(fmt.Errorf("x"))))
	assert.Equal(t, 11, a.ExitCodeFor(EmitFailed("out", fmt.Errorf("x"))))
	assert.Equal(t, 10, a.ExitCodeFor(InternalError("oops", fmt.Errorf("x"))))
}
