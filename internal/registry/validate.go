package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/domprops/internal/config"
	"github.com/specialistvlad/domprops/internal/ctxlog"
	"github.com/specialistvlad/domprops/internal/domproperty"
	"golang.org/x/net/html/atom"
)

// familyHTML marks bundles whose attribute names are checked against the
// HTML atom table in development mode.
const familyHTML = "html"

// Validate checks that every handler referenced by a bundle is registered and
// that every resolved attribute name is syntactically valid. All problems are
// reported together.
//
// When dom is in development mode, Validate also logs hints: a debug record
// for HTML attributes the atom table does not know (legacy and RDFa names are
// legitimately missing from it) and a warning for property names that look
// like a miscapitalized standard name.
func (r *Registry) Validate(ctx context.Context, dom *domproperty.Registry) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)
	dev := !dom.Mode().IsProduction()

	for _, b := range r.bundles {
		if b.CustomAttribute != "" {
			if _, ok := r.handlers.Predicate(b.CustomAttribute); !ok {
				errs = append(errs, fmt.Sprintf("bundle '%s': custom attribute predicate '%s' is not registered (known: %s)", b.Name, b.CustomAttribute, knownNames(r.handlers.PredicateNames())))
			}
		}

		for _, p := range b.Properties {
			if p.MutationMethod != nil && *p.MutationMethod != "" {
				if _, ok := r.handlers.MutationMethod(*p.MutationMethod); !ok {
					errs = append(errs, fmt.Sprintf("bundle '%s', property '%s': mutation method '%s' is not registered (known: %s)", b.Name, p.Name, *p.MutationMethod, knownNames(r.handlers.MutationMethodNames())))
				}
			}

			attr := attributeName(p)
			if !domproperty.IsValidAttributeName(attr) {
				errs = append(errs, fmt.Sprintf("bundle '%s', property '%s': '%s' is not a valid attribute name", b.Name, p.Name, attr))
				continue
			}

			if !dev {
				continue
			}
			if b.Family == familyHTML && p.Namespace == nil && atom.Lookup([]byte(attr)) == 0 {
				logger.Debug("Attribute is not a known HTML attribute.", "bundle", b.Name, "property", p.Name, "attribute", attr)
			}
			if std, ok := dom.PossibleStandardName(p.Name); ok && std != p.Name {
				logger.Warn("Property name looks miscapitalized.", "bundle", b.Name, "property", p.Name, "did_you_mean", std)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// attributeName resolves the attribute a property will be written to.
func attributeName(p *config.Property) string {
	if p.AttributeName != nil {
		return *p.AttributeName
	}
	return strings.ToLower(p.Name)
}

func knownNames(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
