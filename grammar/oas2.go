package grammar

import "github.com/erraggy/oaslint/tree"

func v2(name string) tree.Kind { return tree.Kind{Grammar: OAS2, Name: name} }

// Swagger 2.0 kinds.
var (
	OAS2Root                = v2("root")
	OAS2Info                = v2("info")
	OAS2Contact             = v2("contact")
	OAS2License             = v2("license")
	OAS2Tag                 = v2("tag")
	OAS2ExternalDoc         = v2("external-doc")
	OAS2Paths               = v2("paths")
	OAS2Path                = v2("path")
	OAS2Operation           = v2("operation")
	OAS2Parameter           = v2("parameter")
	OAS2Items               = v2("items")
	OAS2Responses           = v2("responses")
	OAS2Response            = v2("response")
	OAS2Header              = v2("header")
	OAS2Schema              = v2("schema")
	OAS2XML                 = v2("xml")
	OAS2SecurityScheme      = v2("security-scheme")
	OAS2SecurityRequirement = v2("security-requirement")
	OAS2Scopes              = v2("scopes")
	OAS2Extension           = v2("extension")
	OAS2Value               = v2("value")
)

// OAS2Methods are the operation keys of a Swagger 2.0 path item.
var OAS2Methods = []string{"get", "put", "post", "delete", "options", "head", "patch"}

var oas2 = func() *Definition {
	b := newDefinition(OAS2, OAS2Root, OAS2Value, OAS2Extension,
		OAS2Path, OAS2Operation, OAS2Parameter, OAS2Schema, OAS2Header)
	b.kinds(OAS2Root, OAS2Info, OAS2Contact, OAS2License, OAS2Tag, OAS2ExternalDoc,
		OAS2Paths, OAS2Path, OAS2Operation, OAS2Parameter, OAS2Items, OAS2Responses,
		OAS2Response, OAS2Header, OAS2Schema, OAS2XML, OAS2SecurityScheme,
		OAS2SecurityRequirement, OAS2Scopes, OAS2Extension, OAS2Value)

	b.object(OAS2Root, map[string]Field{
		"info":                one(OAS2Info),
		"paths":               one(OAS2Paths),
		"definitions":         mapOf(OAS2Schema),
		"parameters":          mapOf(OAS2Parameter),
		"responses":           mapOf(OAS2Response),
		"securityDefinitions": mapOf(OAS2SecurityScheme),
		"security":            arrayOf(OAS2SecurityRequirement),
		"tags":                arrayOf(OAS2Tag),
		"externalDocs":        one(OAS2ExternalDoc),
	})
	b.object(OAS2Info, map[string]Field{
		"contact": one(OAS2Contact),
		"license": one(OAS2License),
	})
	b.object(OAS2Contact, nil)
	b.object(OAS2License, nil)
	b.object(OAS2ExternalDoc, nil)
	b.object(OAS2Tag, map[string]Field{
		"externalDocs": one(OAS2ExternalDoc),
	})
	b.patterned(OAS2Paths, one(OAS2Path))

	path := map[string]Field{
		"parameters": arrayOf(OAS2Parameter),
	}
	for _, m := range OAS2Methods {
		path[m] = one(OAS2Operation)
	}
	b.object(OAS2Path, path)

	b.object(OAS2Operation, map[string]Field{
		"externalDocs": one(OAS2ExternalDoc),
		"parameters":   arrayOf(OAS2Parameter),
		"responses":    one(OAS2Responses),
		"security":     arrayOf(OAS2SecurityRequirement),
	})
	b.object(OAS2Parameter, map[string]Field{
		"schema": one(OAS2Schema),
		"items":  one(OAS2Items),
	})
	b.object(OAS2Items, map[string]Field{
		"items": one(OAS2Items),
	})
	b.patterned(OAS2Responses, one(OAS2Response))
	b.object(OAS2Response, map[string]Field{
		"schema":  one(OAS2Schema),
		"headers": mapOf(OAS2Header),
	})
	b.object(OAS2Header, map[string]Field{
		"items": one(OAS2Items),
	})
	b.object(OAS2Schema, map[string]Field{
		"items":                {Kind: OAS2Schema, Shape: SingleOrArray},
		"allOf":                arrayOf(OAS2Schema),
		"properties":           mapOf(OAS2Schema),
		"additionalProperties": one(OAS2Schema),
		"xml":                  one(OAS2XML),
		"externalDocs":         one(OAS2ExternalDoc),
	})
	b.object(OAS2XML, nil)
	b.object(OAS2SecurityScheme, map[string]Field{
		"scopes": one(OAS2Scopes),
	})
	b.patterned(OAS2Scopes, one(OAS2Value))
	b.patterned(OAS2SecurityRequirement, one(OAS2Value))
	return b.build()
}()
