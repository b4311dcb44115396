package attachment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillscan/scanworker/internal/career"
)

func TestNormalize_PassThrough(t *testing.T) {
	tests := []struct {
		name string
		mime string
	}{
		{"pdf", "application/pdf"},
		{"plain text", "text/plain"},
		{"text with charset", "text/plain; charset=utf-8"},
		{"png", "image/png"},
		{"jpeg", "image/jpeg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := career.Attachment{Data: []byte("content"), MIMEType: tt.mime}
			out, err := Normalize(in)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestNormalize_SniffsBlankMediaType(t *testing.T) {
	out, err := Normalize(career.Attachment{Data: []byte("plain resume text, nothing binary")})
	require.NoError(t, err)
	assert.Contains(t, out.MIMEType, "text/plain")
}

func TestNormalize_Rejects(t *testing.T) {
	t.Run("empty attachment", func(t *testing.T) {
		_, err := Normalize(career.Attachment{MIMEType: "text/plain"})
		require.Error(t, err)
	})
	t.Run("unsupported type", func(t *testing.T) {
		_, err := Normalize(career.Attachment{Data: []byte("PK\x03\x04"), MIMEType: "application/zip"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported file type")
	})
	t.Run("corrupt docx", func(t *testing.T) {
		_, err := Normalize(career.Attachment{Data: []byte("not a zip"), MIMEType: mimeDocx})
		require.Error(t, err)
	})
}
