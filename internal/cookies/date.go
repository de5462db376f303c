package cookies

import "time"

// expiresLayouts covers the date formats servers put in Expires
// attributes: RFC 1123, the RFC 850 variants with two and four digit
// years, and ANSI C asctime.
var expiresLayouts = []string{
	time.RFC1123,                    // Sun, 06 Nov 1994 08:49:37 GMT
	"Mon, 02-Jan-2006 15:04:05 MST", // Sun, 22-Sep-2013 14:27:43 GMT
	"Mon, 02-Jan-06 15:04:05 MST",
	time.RFC850, // Sunday, 06-Nov-94 08:49:37 GMT
	time.ANSIC,  // Sun Nov  6 08:49:37 1994
}

// parseExpiresDate converts an Expires attribute value to a timestamp.
func parseExpiresDate(s string) (time.Time, error) {
	var err error
	for _, layout := range expiresLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
