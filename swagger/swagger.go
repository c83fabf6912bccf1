// Package swagger embeds the API definition generated from the swagger annotations.
package swagger

import _ "embed"

//go:embed swagger.yaml
var Spec []byte
