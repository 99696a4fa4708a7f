package app

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/specialistvlad/domprops/internal/domproperty"
)

// propertyRow is the printable form of one registry entry.
type propertyRow struct {
	Name              string `json:"name"`
	AttributeName     string `json:"attributeName"`
	Namespace         string `json:"attributeNamespace,omitempty"`
	PropertyName      string `json:"propertyName"`
	Kind              string `json:"valueKind"`
	MustUseProperty   bool   `json:"mustUseProperty"`
	HasMutationMethod bool   `json:"hasMutationMethod"`
}

func newPropertyRow(name string, info domproperty.PropertyInfo) propertyRow {
	return propertyRow{
		Name:              name,
		AttributeName:     info.AttributeName,
		Namespace:         info.AttributeNamespace,
		PropertyName:      info.PropertyName,
		Kind:              info.Kind().String(),
		MustUseProperty:   info.MustUseProperty,
		HasMutationMethod: info.MutationMethod != nil,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, rows []propertyRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROPERTY\tATTRIBUTE\tNAMESPACE\tDOM PROPERTY\tKIND\tMUST USE PROPERTY\tMUTATION")
	for _, r := range rows {
		ns := r.Namespace
		if ns == "" {
			ns = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\t%t\n",
			r.Name, r.AttributeName, ns, r.PropertyName, r.Kind, r.MustUseProperty, r.HasMutationMethod)
	}
	return tw.Flush()
}
