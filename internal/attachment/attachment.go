// Package attachment produces (bytes, media type) tuples for user
// documents and normalizes them into shapes the generative service
// accepts as inline data.
package attachment

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/skillscan/scanworker/internal/career"
)

const (
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePDF  = "application/pdf"

	// maxInlineBytes is the largest document passed to the service as
	// inline data; bigger PDFs are reduced to their extracted text.
	maxInlineBytes = 10 << 20
)

// Normalize makes an attachment acceptable to the generative service:
// a blank declared media type is sniffed from content, docx files are
// converted to extracted plain text (the service rejects docx inline
// data) and oversized PDFs are reduced to their text as well.
func Normalize(att career.Attachment) (career.Attachment, error) {
	if len(att.Data) == 0 {
		return career.Attachment{}, fmt.Errorf("attachment is empty")
	}
	if att.MIMEType == "" {
		att.MIMEType = http.DetectContentType(att.Data)
	}

	switch {
	case att.MIMEType == mimeDocx:
		text, err := extractDocxText(att.Data)
		if err != nil {
			return career.Attachment{}, fmt.Errorf("docx conversion: %w", err)
		}
		return career.Attachment{Data: []byte(text), MIMEType: "text/plain"}, nil

	case att.MIMEType == mimePDF && len(att.Data) > maxInlineBytes:
		text, err := extractPDFText(att.Data)
		if err != nil {
			return career.Attachment{}, fmt.Errorf("pdf conversion: %w", err)
		}
		return career.Attachment{Data: []byte(text), MIMEType: "text/plain"}, nil

	case att.MIMEType == mimePDF,
		strings.HasPrefix(att.MIMEType, "text/"),
		strings.HasPrefix(att.MIMEType, "image/"):
		return att, nil
	}
	return career.Attachment{}, fmt.Errorf("unsupported file type: %s", att.MIMEType)
}

func extractPDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(reader.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	r := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(r, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()
	return doc.Editable().GetContent(), nil
}

// readAll is a small indirection for producer implementations.
func readAll(r io.Reader) ([]byte, error) {
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
