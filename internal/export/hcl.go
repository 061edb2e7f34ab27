package export

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// EncodeHCL renders doc as HCL: a plan block with the document header, one
// import block per reference and one resource block per node.
//
//	plan "RedmineStack" { ... }
//	import "ExistingAlb" { ... }
//	resource "LoadBalancer" "Alb" { ... }
func EncodeHCL(doc *Document) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	header := root.AppendNewBlock("plan", []string{doc.Stack}).Body()
	header.SetAttributeValue("plan_id", cty.StringVal(doc.PlanID))
	header.SetAttributeValue("digest", cty.StringVal(doc.Digest))

	for _, imp := range doc.Imports {
		root.AppendNewline()
		body := root.AppendNewBlock("import", []string{imp.Name}).Body()
		body.SetAttributeValue("kind", cty.StringVal(string(imp.Kind)))
		body.SetAttributeValue("id", cty.StringVal(imp.ID))
	}

	for _, r := range doc.Resources {
		root.AppendNewline()
		body := root.AppendNewBlock("resource", []string{string(r.Kind), r.Name}).Body()
		body.SetAttributeValue("provenance", cty.StringVal(string(r.Provenance)))
		body.SetAttributeValue("depends_on", stringList(r.DependsOn))

		for _, key := range r.Attributes.Keys() {
			v, err := toCty(r.Attributes[key])
			if err != nil {
				return nil, fmt.Errorf("resource %s attribute %s: %w", r.Name, key, err)
			}
			body.SetAttributeValue(key, v)
		}
	}

	return f.Bytes(), nil
}

func stringList(s []string) cty.Value {
	if len(s) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, 0, len(s))
	for _, v := range s {
		vals = append(vals, cty.StringVal(v))
	}
	return cty.ListVal(vals)
}

// toCty converts an attribute through its JSON form, so descriptor types and
// references render the same way in every encoding.
func toCty(v any) (cty.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return cty.NilVal, err
	}
	ty, err := ctyjson.ImpliedType(b)
	if err != nil {
		return cty.NilVal, err
	}
	return ctyjson.Unmarshal(b, ty)
}
