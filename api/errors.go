package api

import "fmt"

// StatusError es una respuesta no exitosa del API. Se distingue del error de
// transporte para no confundir "falló la petición" con "el API dijo que no".
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: estado %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("api: estado %d", e.Code)
}
