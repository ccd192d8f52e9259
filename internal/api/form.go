package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Form builds the multipart payloads the admin CRUD endpoints expect:
// plain fields, JSON-array fields appended value by value, and file parts.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name, value string
}

type formFile struct {
	field, name string
	content     io.Reader
}

func NewForm() *Form {
	return &Form{}
}

// Set appends a plain field.
func (f *Form) Set(name, value string) *Form {
	f.fields = append(f.fields, formField{name, value})
	return f
}

// SetAll appends one part per value under the same field name.
func (f *Form) SetAll(name string, values []string) *Form {
	for _, v := range values {
		f.fields = append(f.fields, formField{name, v})
	}
	return f
}

// File appends an upload part.
func (f *Form) File(field, filename string, content io.Reader) *Form {
	f.files = append(f.files, formFile{field, filename, content})
	return f
}

func (f *Form) encode() (io.Reader, string, error) {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", fmt.Errorf("write field %q: %w", fld.name, err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.name)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %q: %w", file.field, err)
		}
		if _, err := io.Copy(part, file.content); err != nil {
			return nil, "", fmt.Errorf("copy file %q: %w", file.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
