package cookies

import (
	"fmt"
	"sort"
	"strings"
)

// Parser states for Set-Cookie attribute strings.
type parseState int

const (
	stateNameStart parseState = iota
	stateName
	stateValueStart
	stateValue
	stateBad
)

// isTokenChar reports whether c belongs to the RFC 2616 token charset:
// visible ASCII minus the separators.
func isTokenChar(c byte) bool {
	if c <= ' ' || c >= 0x7f {
		return false
	}
	return !isSeparator(c)
}

// isSeparator matches the RFC 2616 separators plus space and tab.
func isSeparator(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/',
		'[', ']', '?', '=', '{', '}', ' ', '\t':
		return true
	}
	return false
}

// isValueChar accepts printable ASCII. Attribute values carry spaces,
// commas and colons (Expires dates do).
func isValueChar(c byte) bool {
	return c >= ' ' && c < 0x7f
}

// parseSetCookie tokenizes a Set-Cookie style attribute string into
// cookie records sharing the string's common attributes. A single
// string may yield several records: "a=1; b=2; domain=x" produces two,
// both with domain x. The whole parse fails on the first invalid
// character; no partial records are produced.
//
// Bare attribute names are accepted only for the secure and httponly
// flags. A later pair with the same name overwrites an earlier one.
// Records come out in lexicographic name order.
func parseSetCookie(raw, defaultDomain string) ([]Cookie, error) {
	var (
		state  = stateNameStart
		name   []byte
		value  []byte
		pairs  = make(map[string]string)
		shared Cookie
	)

	setFlag := func(attr string) bool {
		switch {
		case strings.EqualFold(attr, "secure"):
			shared.Secure = true
		case strings.EqualFold(attr, "httponly"):
			shared.HttpOnly = true
		default:
			return false
		}
		return true
	}

	for i := 0; i < len(raw) && state != stateBad; i++ {
		c := raw[i]
		switch state {
		case stateNameStart:
			switch {
			case c == ' ' || c == ';':
				// Leading spaces and empty fragments are skipped.
			case isTokenChar(c):
				name = append(name, c)
				state = stateName
			default:
				state = stateBad
			}
		case stateName:
			switch {
			case c == ';':
				// A bare name is only valid for the boolean flags.
				state = stateNameStart
				if !setFlag(string(name)) {
					state = stateBad
				}
				name = name[:0]
			case c == '=':
				value = value[:0]
				state = stateValueStart
			case isSeparator(c):
				// Malformed fragment, silently dropped.
				name = name[:0]
				state = stateNameStart
			case isTokenChar(c) || c == '_':
				name = append(name, c)
			default:
				state = stateBad
			}
		case stateValueStart:
			switch {
			case c == ';':
				pairs[string(name)] = ""
				name = name[:0]
				state = stateNameStart
			case c == '"' || c == '\'':
				// Opening quotes are skipped.
			case isValueChar(c):
				value = append(value, c)
				state = stateValue
			default:
				state = stateBad
			}
		case stateValue:
			switch {
			case c == ';' || c == '"' || c == '\'':
				pairs[string(name)] = string(value)
				name = name[:0]
				value = value[:0]
				state = stateNameStart
			case isValueChar(c):
				value = append(value, c)
			default:
				state = stateBad
			}
		}
	}

	// End of input flushes the pending flag or pair.
	switch {
	case state == stateBad:
		return nil, fmt.Errorf("%w: %q", ErrParse, raw)
	case state == stateName && len(name) > 0:
		setFlag(string(name))
	case state == stateValue && len(value) > 0:
		pairs[string(name)] = string(value)
	}

	// Reserved attribute names apply to every record of this string.
	for key, val := range pairs {
		switch strings.ToLower(key) {
		case "expires":
			t, err := parseExpiresDate(val)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrExpiresDate, val)
			}
			shared.Expires = t
			delete(pairs, key)
		case "domain":
			shared.Domain = val
			if val == "" && defaultDomain != "" {
				shared.Domain = defaultDomain
			}
			delete(pairs, key)
		case "path":
			shared.Path = val
			delete(pairs, key)
		}
	}

	names := make([]string, 0, len(pairs))
	for key := range pairs {
		names = append(names, key)
	}
	sort.Strings(names)

	records := make([]Cookie, 0, len(pairs))
	for _, key := range names {
		c := shared
		c.Name = key
		c.Value = pairs[key]
		records = append(records, c)
	}
	return records, nil
}
