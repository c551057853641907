package restcountries

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"countryexplorer/internal/country"
)

// errEmptyResult marks a well-formed response that carried no records.
var errEmptyResult = errors.New("empty result")

// errMissingName marks a record without name.common.
var errMissingName = errors.New("record has no common name")

// apiCountry mirrors the subset of the REST Countries v3.1 record we read.
// Object-valued fields keep their raw bytes so their key order survives.
type apiCountry struct {
	Name struct {
		Common     string          `json:"common"`
		Official   string          `json:"official"`
		NativeName json.RawMessage `json:"nativeName"`
	} `json:"name"`
	TLD        []string        `json:"tld"`
	CCA3       string          `json:"cca3"`
	Currencies json.RawMessage `json:"currencies"`
	Capital    json.RawMessage `json:"capital"`
	Region     string          `json:"region"`
	Subregion  string          `json:"subregion"`
	Languages  json.RawMessage `json:"languages"`
	Borders    []string        `json:"borders"`
	Population int64           `json:"population"`
	Flag       string          `json:"flag"`
	Flags      struct {
		PNG string `json:"png"`
		SVG string `json:"svg"`
	} `json:"flags"`
}

// decodeArray unmarshals a JSON array, wrapping failures with context.
// An empty array is an error unless allowEmpty is set.
func decodeArray[T any](data []byte, context string, allowEmpty bool) ([]T, error) {
	var entries []T
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}
	if len(entries) == 0 && !allowEmpty {
		return nil, fmt.Errorf("%s: %w", context, errEmptyResult)
	}
	return entries, nil
}

// eachMember walks a JSON object in document order. null and absent
// values are treated as an empty object.
func eachMember(raw json.RawMessage, fn func(key string, value json.RawMessage) error) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode %q: %w", key, err)
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

// firstNativeName returns the common form of the first native name entry.
func firstNativeName(raw json.RawMessage) (string, error) {
	var name string
	stop := errors.New("stop")
	err := eachMember(raw, func(_ string, value json.RawMessage) error {
		var entry struct {
			Common string `json:"common"`
		}
		if err := json.Unmarshal(value, &entry); err != nil {
			return err
		}
		name = entry.Common
		return stop
	})
	if err != nil && !errors.Is(err, stop) {
		return "", err
	}
	return name, nil
}

// currencyNames lists currency names in document order.
func currencyNames(raw json.RawMessage) ([]string, error) {
	var names []string
	err := eachMember(raw, func(_ string, value json.RawMessage) error {
		var cur struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(value, &cur); err != nil {
			return err
		}
		if cur.Name != "" {
			names = append(names, cur.Name)
		}
		return nil
	})
	return names, err
}

// languageNames lists language names in document order.
func languageNames(raw json.RawMessage) ([]string, error) {
	var names []string
	err := eachMember(raw, func(_ string, value json.RawMessage) error {
		var lang string
		if err := json.Unmarshal(value, &lang); err != nil {
			return err
		}
		if lang != "" {
			names = append(names, lang)
		}
		return nil
	})
	return names, err
}

// capitals accepts either a list of names or a single name.
func capitals(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var single string
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	if single == "" {
		return nil, nil
	}
	return []string{single}, nil
}

// toCountry converts a wire record. Shape errors in optional object fields
// fail the record; missing optional fields do not.
func (a apiCountry) toCountry() (country.Country, error) {
	native, err := firstNativeName(a.Name.NativeName)
	if err != nil {
		return country.Country{}, fmt.Errorf("name.nativeName: %w", err)
	}
	currencies, err := currencyNames(a.Currencies)
	if err != nil {
		return country.Country{}, fmt.Errorf("currencies: %w", err)
	}
	languages, err := languageNames(a.Languages)
	if err != nil {
		return country.Country{}, fmt.Errorf("languages: %w", err)
	}
	caps, err := capitals(a.Capital)
	if err != nil {
		return country.Country{}, fmt.Errorf("capital: %w", err)
	}

	c := country.Country{
		CommonName:  a.Name.Common,
		NativeName:  native,
		Code:        a.CCA3,
		Population:  a.Population,
		Region:      a.Region,
		Subregion:   a.Subregion,
		Capital:     caps,
		Currencies:  currencies,
		Languages:   languages,
		FlagURL:     a.Flags.PNG,
		FlagEmoji:   a.Flag,
		BorderCodes: a.Borders,
	}
	if c.FlagURL == "" {
		c.FlagURL = a.Flags.SVG
	}
	if len(a.TLD) > 0 {
		c.TopLevelDomain = a.TLD[0]
	}
	return c, nil
}

// decodeCountries decodes an array of records. Records that fail to convert
// are skipped and reported through skipped.
func decodeCountries(data []byte, context string, allowEmpty bool, skipped func(error)) ([]country.Country, error) {
	records, err := decodeArray[apiCountry](data, context, allowEmpty)
	if err != nil {
		return nil, err
	}
	out := make([]country.Country, 0, len(records))
	for _, r := range records {
		c, err := r.toCountry()
		if err != nil {
			if skipped != nil {
				skipped(fmt.Errorf("%s: %q: %w", context, r.Name.Common, err))
			}
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
