package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/folio-dev/folio/pkg/domain/types"
)

type LanguageBytes struct {
	Name  string
	Bytes int64
}

// LanguageBreakdown lists byte counts per language in the order the provider
// reported them. It encodes as a JSON object and decoding keeps key order.
// An empty breakdown means the data is unavailable, not that nothing was written.
type LanguageBreakdown []LanguageBytes

func (x LanguageBreakdown) Validate() error {
	for _, lang := range x {
		if lang.Bytes < 0 {
			return goerr.Wrap(types.ErrValidationFailed, "negative language byte count",
				goerr.V("language", lang.Name),
				goerr.V("bytes", lang.Bytes),
			)
		}
	}
	return nil
}

func (x LanguageBreakdown) Total() int64 {
	var total int64
	for _, lang := range x {
		total += lang.Bytes
	}
	return total
}

// Get returns the byte count of name, 0 when absent.
func (x LanguageBreakdown) Get(name string) int64 {
	for _, lang := range x {
		if lang.Name == name {
			return lang.Bytes
		}
	}
	return 0
}

// PrimaryLanguage returns the language with the most bytes, or nil when the
// breakdown carries no bytes. Ties go to the language listed first.
func (x LanguageBreakdown) PrimaryLanguage() *string {
	if x.Total() == 0 {
		return nil
	}

	var (
		primary string
		max     int64 = -1
	)
	for _, lang := range x {
		if lang.Bytes > max {
			primary, max = lang.Name, lang.Bytes
		}
	}
	return &primary
}

// Merge adds every byte count of src into x. Languages new to x are appended.
func (x *LanguageBreakdown) Merge(src LanguageBreakdown) {
	for _, lang := range src {
		x.add(lang.Name, lang.Bytes)
	}
}

func (x *LanguageBreakdown) add(name string, n int64) {
	for i := range *x {
		if (*x)[i].Name == name {
			(*x)[i].Bytes += n
			return
		}
	}
	*x = append(*x, LanguageBytes{Name: name, Bytes: n})
}

func (x LanguageBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, lang := range x {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(lang.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatInt(lang.Bytes, 10))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (x *LanguageBreakdown) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*x = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return &json.UnmarshalTypeError{Value: fmt.Sprint(tok), Type: reflect.TypeOf(*x)}
	}

	var resp LanguageBreakdown
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)

		var n int64
		if err := dec.Decode(&n); err != nil {
			return err
		}

		// A repeated key overwrites the earlier value, as encoding/json does for maps.
		if i, ok := seen[name]; ok {
			resp[i].Bytes = n
			continue
		}
		seen[name] = len(resp)
		resp = append(resp, LanguageBytes{Name: name, Bytes: n})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	if resp == nil {
		resp = LanguageBreakdown{}
	}
	*x = resp
	return nil
}
