package demo

// TemplateKeys lists the storefront layouts a restaurant page can render
// with, in hash-dispatch order. Changing the order re-shuffles which
// template unclaimed restaurants land on, so append only.
var TemplateKeys = []string{
	"ming",
	"ming-slim",
	"ming-balanced",
	"ming-full",
	"night-market",
	"wok-fire",
}

// TemplateLabels maps template keys to their human names.
var TemplateLabels = map[string]string{
	"ming":          "Ming",
	"ming-slim":     "Ming Slim",
	"ming-balanced": "Ming Balanced",
	"ming-full":     "Ming Full",
	"night-market":  "Night Market",
	"wok-fire":      "Wok Fire",
}

// IsTemplateKey reports whether key names a known template.
func IsTemplateKey(key string) bool {
	_, ok := TemplateLabels[key]
	return ok
}

// SelectTemplate picks the template for a restaurant page: an explicitly
// requested key wins if valid, then the restaurant's stored key, and
// otherwise the id-name hash picks one. A restaurant with no stored
// preference therefore always renders the same template.
func SelectTemplate(id, name, stored, requested string) string {
	if IsTemplateKey(requested) {
		return requested
	}
	if IsTemplateKey(stored) {
		return stored
	}
	seed := HashString(id + "-" + name)
	return TemplateKeys[seed%len(TemplateKeys)]
}
