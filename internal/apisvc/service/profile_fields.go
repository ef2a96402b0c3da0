package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lifemon/lifemon-services/internal/apisvc/store"
)

// FieldKind drives how a raw request value collapses during normalization.
type FieldKind int

const (
	// RequiredText collapses null/missing/blank to the empty string.
	RequiredText FieldKind = iota
	// OptionalText collapses null/missing/blank to NULL.
	OptionalText
	// OptionalInt collapses null/missing to NULL; a non-numeric value is a
	// validation error, never a silently persisted parse failure.
	OptionalInt
)

// profileFields is the single declarative schema for the profile update body.
// It replaces the per-field null/undefined/blank collapse the old backend
// repeated twelve times.
var profileFields = []struct {
	Name string
	Kind FieldKind
}{
	{"nama", RequiredText},
	{"npm", RequiredText},
	{"jurusan", RequiredText},
	{"email", RequiredText},
	{"phone", OptionalText},
	{"alamat", OptionalText},
	{"bio", OptionalText},
	{"avatar_url", OptionalText},
	{"tanggal_lahir", OptionalText},
	{"jenis_kelamin", OptionalText},
	{"tinggi_badan", OptionalInt},
	{"berat_badan", OptionalInt},
}

// NormalizeProfile applies the schema to a decoded JSON body. The returned
// error is a *ValidationError naming every field that failed to parse.
func NormalizeProfile(raw map[string]interface{}) (store.ProfileData, error) {
	var d store.ProfileData
	var bad []string

	text := make(map[string]string, len(profileFields))
	optText := make(map[string]*string, len(profileFields))
	optInt := make(map[string]*int, len(profileFields))

	for _, f := range profileFields {
		v, ok := raw[f.Name]
		switch f.Kind {
		case RequiredText:
			text[f.Name] = normalizeText(v, ok)
		case OptionalText:
			if s := normalizeText(v, ok); s != "" {
				s := s
				optText[f.Name] = &s
			}
		case OptionalInt:
			n, err := normalizeInt(v, ok)
			if err != nil {
				bad = append(bad, f.Name)
				continue
			}
			optInt[f.Name] = n
		}
	}

	if len(bad) > 0 {
		return d, invalidf("field harus berupa angka: %s", strings.Join(bad, ", "))
	}

	d.Nama = text["nama"]
	d.Npm = text["npm"]
	d.Jurusan = text["jurusan"]
	d.Email = text["email"]
	d.Phone = optText["phone"]
	d.Alamat = optText["alamat"]
	d.Bio = optText["bio"]
	d.AvatarURL = optText["avatar_url"]
	d.TanggalLahir = optText["tanggal_lahir"]
	d.JenisKelamin = optText["jenis_kelamin"]
	d.TinggiBadan = optInt["tinggi_badan"]
	d.BeratBadan = optInt["berat_badan"]

	return d, nil
}

// normalizeText collapses null, missing and blank-after-trim to "".
func normalizeText(v interface{}, present bool) string {
	if !present || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		// clients occasionally send numbers for text fields (npm is a number
		// in some frontends); keep them
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// normalizeInt accepts JSON numbers and numeric strings, rejects everything
// else.
func normalizeInt(v interface{}, present bool) (*int, error) {
	if !present || v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case float64:
		i := int(math.Trunc(n))
		return &i, nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return nil, nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		return &i, nil
	default:
		return nil, fmt.Errorf("not a number: %v", v)
	}
}
