package draft

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shariarfaisal/snapshop/internal/api"
	"github.com/shariarfaisal/snapshop/internal/models"
)

// Validate runs the submission-time schema check and records the
// resulting field errors on the draft. A non-empty result blocks
// submission wholesale; there is no partial submission of the valid
// subset.
func (d *Draft) Validate() []api.FieldError {
	d.mu.Lock()
	defer d.mu.Unlock()

	var errs []api.FieldError
	add := func(path, message string) {
		errs = append(errs, api.FieldError{Path: path, Message: message})
	}

	if strings.TrimSpace(d.Name) == "" {
		add("name", "Product name is required")
	}
	if _, ok := coerceNumber(d.BasePrice); !ok {
		add("basePrice", "Base price must be a non-negative number")
	}
	if _, ok := coerceInt(d.Stock); !ok {
		add("stock", "Stock must be a non-negative integer")
	}

	for i, a := range d.attributes {
		if strings.TrimSpace(a.Key) == "" {
			add(fmt.Sprintf("attributes.%d.key", i), "Attribute key is required")
		}
		if strings.TrimSpace(a.Value) == "" {
			add(fmt.Sprintf("attributes.%d.value", i), "Attribute value is required")
		}
	}

	for i, v := range d.variants {
		if strings.TrimSpace(v.Name) == "" {
			add(fmt.Sprintf("variants.%d.name", i), "Variant name is required")
		}
		if _, ok := coerceNumber(v.Price); !ok {
			add(fmt.Sprintf("variants.%d.price", i), "Price must be a non-negative number")
		}
		if _, ok := coerceInt(v.Stock); !ok {
			add(fmt.Sprintf("variants.%d.stock", i), "Stock must be a non-negative integer")
		}
	}

	for i, m := range d.media {
		if !validURL(m.URL) {
			add(fmt.Sprintf("media.%d.url", i), "Invalid URL")
		}
		if m.Type != models.MediaTypeImage && m.Type != models.MediaTypeVideo {
			add(fmt.Sprintf("media.%d.type", i), "Type must be image or video")
		}
	}

	d.fieldErrors = map[string]string{}
	for _, e := range errs {
		d.fieldErrors[e.Path] = e.Message
	}

	return errs
}

// coerceNumber coerces form text to a non-negative number. Empty input
// coerces to zero.
func coerceNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// coerceInt coerces form text to a non-negative integer. Empty input
// coerces to zero.
func coerceInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
