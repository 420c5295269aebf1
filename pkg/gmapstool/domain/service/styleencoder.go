package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
)

const (
	styleJoiner    = "|"
	styleSeparator = "&style="
	defaultTarget  = "feature:all"
)

var hexColorRegex = regexp.MustCompile("^#[0-9a-fA-F]{6}$")

// IsHexColor reports whether the string form of value is exactly a #RRGGBB color.
func IsHexColor(value any) bool {
	return hexColorRegex.MatchString(fmt.Sprint(value))
}

// ToColorLiteral rewrites a #RRGGBB color as the 0xRRGGBB literal used by
// static map styles. The input must already satisfy IsHexColor.
func ToColorLiteral(hex string) string {
	return "0x" + hex[1:]
}

// EncodeStyles converts style rules into static map style segments. The
// segments are joined by "&style=", so the caller only prefixes the first one
// with "style=".
func EncodeStyles(rules []entities.StyleRule) string {
	segments := make([]string, 0, len(rules))
	for _, rule := range rules {
		segments = append(segments, encodeTarget(rule)+styleJoiner+encodeStylers(rule.Stylers))
	}
	return strings.Join(segments, styleSeparator)
}

func encodeTarget(rule entities.StyleRule) string {
	if rule.FeatureType == "" && rule.ElementType == "" {
		return defaultTarget
	}

	var target []string
	if rule.FeatureType != "" {
		target = append(target, "feature:"+rule.FeatureType)
	}
	if rule.ElementType != "" {
		target = append(target, "element:"+rule.ElementType)
	}
	return strings.Join(target, styleJoiner)
}

func encodeStylers(stylers entities.Stylers) string {
	style := make([]string, 0, len(stylers))
	for _, styler := range stylers {
		value := formatStylerValue(styler.Value)
		if IsHexColor(value) {
			value = ToColorLiteral(value)
		}
		style = append(style, styler.Key+":"+value)
	}
	return strings.Join(style, styleJoiner)
}

// formatStylerValue renders numbers in their shortest form, so a decoded
// "1.0" is written as 1.
func formatStylerValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case json.Number:
		f, err := strconv.ParseFloat(value.String(), 64)
		if err != nil {
			return value.String()
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	default:
		return fmt.Sprint(value)
	}
}
