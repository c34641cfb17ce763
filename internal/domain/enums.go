// Package domain holds the closed enumerations validated once at the API boundary.
// Everything past the boundary works with these typed values only.
package domain

import (
	"sort"
	"strings"

	svcErr "github.com/oggyb/matchcore/internal/errors"
)

type Direction string

const (
	DirectionLike Direction = "like"
	DirectionPass Direction = "pass"
)

// ParseDirection accepts "like" or "pass" in any case.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionLike:
		return DirectionLike, nil
	case DirectionPass:
		return DirectionPass, nil
	}
	return "", svcErr.ErrInvalidDirection
}

// DirectionFromLiked maps the boolean wire flag onto a Direction.
func DirectionFromLiked(liked bool) Direction {
	if liked {
		return DirectionLike
	}
	return DirectionPass
}

type Gender string

const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderNonBinary Gender = "non_binary"
)

// AllGenders is the closed set, in stable order.
var AllGenders = []Gender{GenderMale, GenderFemale, GenderNonBinary}

var genderSynonyms = map[string][]Gender{
	"male": {GenderMale}, "m": {GenderMale}, "man": {GenderMale}, "men": {GenderMale},
	"guy": {GenderMale}, "guys": {GenderMale}, "boys": {GenderMale},

	"female": {GenderFemale}, "f": {GenderFemale}, "woman": {GenderFemale}, "women": {GenderFemale},
	"girl": {GenderFemale}, "girls": {GenderFemale}, "ladies": {GenderFemale},

	"non_binary": {GenderNonBinary}, "nonbinary": {GenderNonBinary}, "non-binary": {GenderNonBinary},
	"nb": {GenderNonBinary}, "enby": {GenderNonBinary},

	"everyone": AllGenders, "all": AllGenders, "anyone": AllGenders,
	"both": {GenderMale, GenderFemale},
}

func lookupGender(s string) []Gender {
	return genderSynonyms[strings.ToLower(strings.TrimSpace(s))]
}

// ParseGender canonicalizes a declared gender. Group words such as "everyone"
// are rejected here because a declared gender is a single category.
func ParseGender(s string) (Gender, error) {
	g := lookupGender(s)
	if len(g) != 1 {
		return "", svcErr.ErrInvalidGender
	}
	return g[0], nil
}

// ParseInterests canonicalizes synonyms into a sorted, de-duplicated set.
// The result is never empty on success.
func ParseInterests(raw []string) ([]Gender, error) {
	seen := make(map[Gender]bool)
	for _, r := range raw {
		gs := lookupGender(r)
		if len(gs) == 0 {
			return nil, svcErr.ErrInvalidInterests
		}
		for _, g := range gs {
			seen[g] = true
		}
	}
	if len(seen) == 0 {
		return nil, svcErr.ErrInvalidInterests
	}
	out := make([]Gender, 0, len(seen))
	for g := range seen {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// InterestedIn reports whether g is contained in interests.
func InterestedIn(interests []string, g Gender) bool {
	for _, i := range interests {
		if Gender(i) == g {
			return true
		}
	}
	return false
}

type ReportReason string

const (
	ReasonHarassment    ReportReason = "harassment"
	ReasonSpam          ReportReason = "spam"
	ReasonFakeProfile   ReportReason = "fake_profile"
	ReasonInappropriate ReportReason = "inappropriate_content"
	ReasonUnderage      ReportReason = "underage"
	ReasonOther         ReportReason = "other"
)

var reportReasons = map[ReportReason]bool{
	ReasonHarassment: true, ReasonSpam: true, ReasonFakeProfile: true,
	ReasonInappropriate: true, ReasonUnderage: true, ReasonOther: true,
}

func ParseReportReason(s string) (ReportReason, error) {
	r := ReportReason(strings.ToLower(strings.TrimSpace(s)))
	if !reportReasons[r] {
		return "", svcErr.ErrInvalidReason
	}
	return r, nil
}

type PhotoType string

const (
	PhotoPrimary PhotoType = "primary"
	PhotoGallery PhotoType = "gallery"
)

// ParsePhotoType defaults an empty value to gallery.
func ParsePhotoType(s string) (PhotoType, error) {
	switch PhotoType(strings.ToLower(strings.TrimSpace(s))) {
	case PhotoPrimary:
		return PhotoPrimary, nil
	case PhotoGallery, "":
		return PhotoGallery, nil
	}
	return "", svcErr.ErrInvalidPhotoType
}
