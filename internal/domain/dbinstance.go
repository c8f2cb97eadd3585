package domain

// DbInstance identifies one running mydb process in a deployment. Ids are
// self-assigned UUIDs, echoed back by the config server on registration.
type DbInstance struct {
	Id       string `json:"id,omitempty"`
	Host     string `json:"host,omitempty"`
	Port     int    `json:"port,omitempty"`
	Database string `json:"database,omitempty"`
}
