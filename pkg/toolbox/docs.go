package toolbox

// swagger:parameters toolboxMenus
type _ struct {
	// in: path
	// required: true
	DBType string `json:"dbType"`
}
