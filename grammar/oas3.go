package grammar

import "github.com/erraggy/oaslint/tree"

func v3(name string) tree.Kind { return tree.Kind{Grammar: OAS3, Name: name} }

// OpenAPI 3.x kinds.
var (
	OAS3Root                = v3("root")
	OAS3Info                = v3("info")
	OAS3Contact             = v3("contact")
	OAS3License             = v3("license")
	OAS3Server              = v3("server")
	OAS3ServerVariable      = v3("server-variable")
	OAS3Tag                 = v3("tag")
	OAS3ExternalDoc         = v3("external-doc")
	OAS3Paths               = v3("paths")
	OAS3Path                = v3("path")
	OAS3Operation           = v3("operation")
	OAS3Parameter           = v3("parameter")
	OAS3RequestBody         = v3("request-body")
	OAS3MediaType           = v3("media-type")
	OAS3Encoding            = v3("encoding")
	OAS3Responses           = v3("responses")
	OAS3Response            = v3("response")
	OAS3Header              = v3("header")
	OAS3Schema              = v3("schema")
	OAS3Discriminator       = v3("discriminator")
	OAS3XML                 = v3("xml")
	OAS3Example             = v3("example")
	OAS3Link                = v3("link")
	OAS3Callback            = v3("callback")
	OAS3Components          = v3("components")
	OAS3SecurityScheme      = v3("security-scheme")
	OAS3OAuthFlows          = v3("oauth-flows")
	OAS3OAuthFlow           = v3("oauth-flow")
	OAS3SecurityRequirement = v3("security-requirement")
	OAS3Extension           = v3("extension")
	OAS3Value               = v3("value")
)

// OAS3Methods are the operation keys of an OpenAPI 3 path item.
var OAS3Methods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace", "query"}

var oas3 = func() *Definition {
	b := newDefinition(OAS3, OAS3Root, OAS3Value, OAS3Extension,
		OAS3Path, OAS3Operation, OAS3Parameter, OAS3Schema, OAS3Header,
		OAS3Callback, OAS3MediaType)
	b.kinds(OAS3Root, OAS3Info, OAS3Contact, OAS3License, OAS3Server, OAS3ServerVariable,
		OAS3Tag, OAS3ExternalDoc, OAS3Paths, OAS3Path, OAS3Operation, OAS3Parameter,
		OAS3RequestBody, OAS3MediaType, OAS3Encoding, OAS3Responses, OAS3Response,
		OAS3Header, OAS3Schema, OAS3Discriminator, OAS3XML, OAS3Example, OAS3Link,
		OAS3Callback, OAS3Components, OAS3SecurityScheme, OAS3OAuthFlows, OAS3OAuthFlow,
		OAS3SecurityRequirement, OAS3Extension, OAS3Value)

	b.object(OAS3Root, map[string]Field{
		"info":         one(OAS3Info),
		"servers":      arrayOf(OAS3Server),
		"paths":        one(OAS3Paths),
		"webhooks":     mapOf(OAS3Path),
		"components":   one(OAS3Components),
		"security":     arrayOf(OAS3SecurityRequirement),
		"tags":         arrayOf(OAS3Tag),
		"externalDocs": one(OAS3ExternalDoc),
	})
	b.object(OAS3Info, map[string]Field{
		"contact": one(OAS3Contact),
		"license": one(OAS3License),
	})
	b.object(OAS3Contact, nil)
	b.object(OAS3License, nil)
	b.object(OAS3ExternalDoc, nil)
	b.object(OAS3Server, map[string]Field{
		"variables": mapOf(OAS3ServerVariable),
	})
	b.object(OAS3ServerVariable, nil)
	b.object(OAS3Tag, map[string]Field{
		"externalDocs": one(OAS3ExternalDoc),
	})
	b.object(OAS3Components, map[string]Field{
		"schemas":         mapOf(OAS3Schema),
		"responses":       mapOf(OAS3Response),
		"parameters":      mapOf(OAS3Parameter),
		"examples":        mapOf(OAS3Example),
		"requestBodies":   mapOf(OAS3RequestBody),
		"headers":         mapOf(OAS3Header),
		"securitySchemes": mapOf(OAS3SecurityScheme),
		"links":           mapOf(OAS3Link),
		"callbacks":       mapOf(OAS3Callback),
		"pathItems":       mapOf(OAS3Path),
	})
	b.patterned(OAS3Paths, one(OAS3Path))

	path := map[string]Field{
		"servers":    arrayOf(OAS3Server),
		"parameters": arrayOf(OAS3Parameter),
	}
	for _, m := range OAS3Methods {
		path[m] = one(OAS3Operation)
	}
	b.object(OAS3Path, path)

	b.object(OAS3Operation, map[string]Field{
		"externalDocs": one(OAS3ExternalDoc),
		"parameters":   arrayOf(OAS3Parameter),
		"requestBody":  one(OAS3RequestBody),
		"responses":    one(OAS3Responses),
		"callbacks":    mapOf(OAS3Callback),
		"security":     arrayOf(OAS3SecurityRequirement),
		"servers":      arrayOf(OAS3Server),
	})
	b.object(OAS3Parameter, map[string]Field{
		"schema":   one(OAS3Schema),
		"content":  mapOf(OAS3MediaType),
		"examples": mapOf(OAS3Example),
	})
	b.object(OAS3RequestBody, map[string]Field{
		"content": mapOf(OAS3MediaType),
	})
	b.object(OAS3MediaType, map[string]Field{
		"schema":   one(OAS3Schema),
		"examples": mapOf(OAS3Example),
		"encoding": mapOf(OAS3Encoding),
	})
	b.object(OAS3Encoding, map[string]Field{
		"headers": mapOf(OAS3Header),
	})
	b.patterned(OAS3Responses, one(OAS3Response))
	b.object(OAS3Response, map[string]Field{
		"headers": mapOf(OAS3Header),
		"content": mapOf(OAS3MediaType),
		"links":   mapOf(OAS3Link),
	})
	b.patterned(OAS3Callback, one(OAS3Path))
	b.object(OAS3Link, map[string]Field{
		"server": one(OAS3Server),
	})
	b.object(OAS3Header, map[string]Field{
		"schema":   one(OAS3Schema),
		"content":  mapOf(OAS3MediaType),
		"examples": mapOf(OAS3Example),
	})
	b.object(OAS3Example, nil)
	b.object(OAS3Schema, map[string]Field{
		"discriminator":         one(OAS3Discriminator),
		"xml":                   one(OAS3XML),
		"externalDocs":          one(OAS3ExternalDoc),
		"items":                 one(OAS3Schema),
		"allOf":                 arrayOf(OAS3Schema),
		"oneOf":                 arrayOf(OAS3Schema),
		"anyOf":                 arrayOf(OAS3Schema),
		"not":                   one(OAS3Schema),
		"properties":            mapOf(OAS3Schema),
		"additionalProperties":  one(OAS3Schema),
		"patternProperties":     mapOf(OAS3Schema),
		"prefixItems":           arrayOf(OAS3Schema),
		"contains":              one(OAS3Schema),
		"if":                    one(OAS3Schema),
		"then":                  one(OAS3Schema),
		"else":                  one(OAS3Schema),
		"$defs":                 mapOf(OAS3Schema),
		"dependentSchemas":      mapOf(OAS3Schema),
		"propertyNames":         one(OAS3Schema),
		"unevaluatedItems":      one(OAS3Schema),
		"unevaluatedProperties": one(OAS3Schema),
	})
	b.object(OAS3Discriminator, nil)
	b.object(OAS3XML, nil)
	b.object(OAS3SecurityScheme, map[string]Field{
		"flows": one(OAS3OAuthFlows),
	})
	b.object(OAS3OAuthFlows, map[string]Field{
		"implicit":          one(OAS3OAuthFlow),
		"password":          one(OAS3OAuthFlow),
		"clientCredentials": one(OAS3OAuthFlow),
		"authorizationCode": one(OAS3OAuthFlow),
	})
	b.object(OAS3OAuthFlow, nil)
	b.patterned(OAS3SecurityRequirement, one(OAS3Value))
	return b.build()
}()
