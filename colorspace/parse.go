package colorspace

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses "#rgb" or "#rrggbb" (the leading # is optional).
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, &InvalidInputError{Reason: fmt.Sprintf("hex color %q must have 3 or 6 digits", s)}
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, &InvalidInputError{Reason: fmt.Sprintf("hex color %q: %v", s, err)}
	}
	return RGB{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, nil
}

// Parse reads a color written as #hex, rgb(r,g,b), lab(l,a,b), xyz(x,y,z),
// hsl(h,s%,l%), hsv(h,s%,v%), cmyk(c,m,y,k) or a temperature such as 6500K.
// Percent signs are optional; HSL/HSV saturation and lightness are read as
// percentages. The result is validated.
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, &InvalidInputError{Reason: "empty color"}
	}

	if strings.HasPrefix(s, "#") {
		rgb, err := ParseHex(s)
		if err != nil {
			return nil, err
		}
		return rgb, nil
	}

	if strings.HasSuffix(s, "k") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "k"), 64)
		if err != nil {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("temperature %q: %v", s, err)}
		}
		return validated(Kelvin(v))
	}

	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("unrecognized color %q", s)}
	}
	name := strings.TrimSpace(s[:open])
	args, err := parseArgs(s[open+1 : len(s)-1])
	if err != nil {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("color %q: %v", s, err)}
	}

	var c Color
	switch name {
	case "rgb":
		if err := arity(s, args, 3); err != nil {
			return nil, err
		}
		for _, a := range args {
			if a != float64(int(a)) {
				return nil, &InvalidInputError{Reason: fmt.Sprintf("color %q: rgb channels must be integers", s)}
			}
		}
		c = RGB{R: int(args[0]), G: int(args[1]), B: int(args[2])}
	case "lab":
		if err := arity(s, args, 3); err != nil {
			return nil, err
		}
		c = Lab{L: args[0], A: args[1], B: args[2]}
	case "xyz":
		if err := arity(s, args, 3); err != nil {
			return nil, err
		}
		c = XYZ{X: args[0], Y: args[1], Z: args[2]}
	case "hsl":
		if err := arity(s, args, 3); err != nil {
			return nil, err
		}
		c = HSL{H: args[0], S: args[1] / 100, L: args[2] / 100}
	case "hsv":
		if err := arity(s, args, 3); err != nil {
			return nil, err
		}
		c = HSV{H: args[0], S: args[1] / 100, V: args[2] / 100}
	case "cmyk":
		if err := arity(s, args, 4); err != nil {
			return nil, err
		}
		c = CMYK{C: args[0], M: args[1], Y: args[2], K: args[3]}
	default:
		return nil, &InvalidInputError{Reason: fmt.Sprintf("unknown color function %q", name)}
	}

	return validated(c)
}

func validated(c Color) (Color, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func parseArgs(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSuffix(strings.TrimSpace(p), "%")
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func arity(s string, args []float64, n int) error {
	if len(args) != n {
		return &InvalidInputError{Reason: fmt.Sprintf("color %q needs %d components, got %d", s, n, len(args))}
	}
	return nil
}
