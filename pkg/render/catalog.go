package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Catalog is an in-memory Translator keyed by locale, text domain and message.
// It is meant for tests and small fixed deployments; hosts with a real
// localization pipeline plug in their own Translator.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]map[string]map[string]string
}

// NewCatalog constructs an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{messages: make(map[string]map[string]map[string]string)}
}

// Add registers messages for locale and domain. Later calls override earlier
// entries for the same key.
func (c *Catalog) Add(locale, domain string, messages map[string]string) {
	locale = NormalizeLocale(locale)
	c.mu.Lock()
	defer c.mu.Unlock()

	domains, ok := c.messages[locale]
	if !ok {
		domains = make(map[string]map[string]string)
		c.messages[locale] = domains
	}
	entries, ok := domains[domain]
	if !ok {
		entries = make(map[string]string, len(messages))
		domains[domain] = entries
	}
	for key, msg := range messages {
		entries[key] = msg
	}
}

// Translate implements Translator using the default (empty) domain.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	return c.TranslateDomain(locale, "", key, args...)
}

// TranslateDomain implements DomainTranslator.
func (c *Catalog) TranslateDomain(locale, domain, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}
	locale = NormalizeLocale(locale)

	c.mu.RLock()
	msg, ok := c.messages[locale][domain][key]
	c.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("render: no translation for %q in %s/%s", key, locale, domain)
	}
	if len(args) > 0 && strings.Contains(msg, "%") {
		return fmt.Sprintf(msg, args...), nil
	}
	return msg, nil
}

// LoadCatalog reads a YAML document of the form
//
//	es-ES:
//	  kb-support:
//	    "All %s": "Todas las %s"
//
// into a new Catalog.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var doc map[string]map[string]map[string]string
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("render: decode catalog: %w", err)
	}
	catalog := NewCatalog()
	for locale, domains := range doc {
		for domain, messages := range domains {
			catalog.Add(locale, domain, messages)
		}
	}
	return catalog, nil
}
