// Package messages holds the client-facing message table. Every response
// message is looked up by Key so the wording can be switched per locale or
// overridden from a file without touching handlers or usecases.
package messages

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Key string

const (
	InvalidRequestBody Key = "request.invalidBody"
	InternalError      Key = "server.internalError"
	HealthStoreDown    Key = "health.storeDown"

	UsersListed           Key = "users.listed"
	UsersEmpty            Key = "users.empty"
	UserRequiredFields    Key = "users.requiredFields"
	UserInvalidBirthDate  Key = "users.invalidBirthDate"
	UserAlreadyExists     Key = "users.alreadyExists"
	UserEmailExists       Key = "users.emailExists"
	UserDuplicateIDNumber Key = "users.duplicateIdNumber"
	UserNotFound          Key = "users.notFound"
	UserIDRequired        Key = "users.idRequired"
	UserHasTests          Key = "users.hasTests"
	UserCreated           Key = "users.created"
	UserUpdated           Key = "users.updated"
	UserDeleted           Key = "users.deleted"

	TestsListed        Key = "tests.listed"
	TestsEmpty         Key = "tests.empty"
	TestRequiredFields Key = "tests.requiredFields"
	TestAlreadyExists  Key = "tests.alreadyExists"
	TestDuplicateRef   Key = "tests.duplicateReference"
	TestNotFound       Key = "tests.notFound"
	TestOwnerNotFound  Key = "tests.ownerNotFound"
	TestIDRequired     Key = "tests.idRequired"
	TestCreated        Key = "tests.created"
	TestUpdated        Key = "tests.updated"
	TestDeleted        Key = "tests.deleted"
)

var spanish = map[Key]string{
	InvalidRequestBody: "Cuerpo de la solicitud inválido",
	InternalError:      "Error interno del servidor",
	HealthStoreDown:    "Base de datos no disponible",

	UsersListed:           "Usuarios encontrados",
	UsersEmpty:            "No se encontraron usuarios",
	UserRequiredFields:    "Rellene los campos requeridos",
	UserInvalidBirthDate:  "Fecha de nacimiento inválida, use AAAA-MM-DD",
	UserAlreadyExists:     "El usuario ya existe",
	UserEmailExists:       "El correo ya se encuentra registrado",
	UserDuplicateIDNumber: "Número de identificación duplicado",
	UserNotFound:          "Usuario no encontrado",
	UserIDRequired:        "Se require id del usuario",
	UserHasTests:          "El usuario tiene pruebas asignadas",
	UserCreated:           "Nuevo usuario %s %s creado",
	UserUpdated:           "Perfil de %s %s actualizado",
	UserDeleted:           "Usuario %s %s con número de identificación %d eliminado",

	TestsListed:        "Pruebas encontradas",
	TestsEmpty:         "No se encontraron pruebas",
	TestRequiredFields: "Ingrese los campos requeridos",
	TestAlreadyExists:  "La prueba ya se encuentra en el sistema",
	TestDuplicateRef:   "Referencia duplicada",
	TestNotFound:       "Prueba no encontrada",
	TestOwnerNotFound:  "El usuario de la prueba no existe",
	TestIDRequired:     "Se require ID de la prueba",
	TestCreated:        "Nueva prueba creada",
	TestUpdated:        "Prueba '%s' actualizada",
	TestDeleted:        "Prueba '%s' eliminada",
}

var english = map[Key]string{
	InvalidRequestBody: "Invalid request body",
	InternalError:      "Internal server error",
	HealthStoreDown:    "Database unavailable",

	UsersListed:           "Users retrieved successfully",
	UsersEmpty:            "No users found",
	UserRequiredFields:    "Fill in the required fields",
	UserInvalidBirthDate:  "Invalid birth date, use YYYY-MM-DD",
	UserAlreadyExists:     "User already exists",
	UserEmailExists:       "Email already registered",
	UserDuplicateIDNumber: "Duplicate identification number",
	UserNotFound:          "User not found",
	UserIDRequired:        "User id is required",
	UserHasTests:          "User has assigned tests",
	UserCreated:           "New user %s %s created",
	UserUpdated:           "Profile of %s %s updated",
	UserDeleted:           "User %s %s with identification number %d deleted",

	TestsListed:        "Tests retrieved successfully",
	TestsEmpty:         "No tests found",
	TestRequiredFields: "Fill in the required fields",
	TestAlreadyExists:  "Test already registered",
	TestDuplicateRef:   "Duplicate reference",
	TestNotFound:       "Test not found",
	TestOwnerNotFound:  "The test's user does not exist",
	TestIDRequired:     "Test id is required",
	TestCreated:        "New test created",
	TestUpdated:        "Test '%s' updated",
	TestDeleted:        "Test '%s' deleted",
}

var builtin = map[string]map[Key]string{
	"es": spanish,
	"en": english,
}

// Catalog resolves message keys to text for one locale.
type Catalog struct {
	locale string
	table  map[Key]string
}

// New returns the built-in catalog for locale. Unknown locales fall back to
// Spanish, the language the API originally answered in.
func New(locale string) *Catalog {
	base, ok := builtin[locale]
	if !ok {
		locale = "es"
		base = spanish
	}

	table := make(map[Key]string, len(base))
	for k, v := range base {
		table[k] = v
	}
	return &Catalog{locale: locale, table: table}
}

// Load builds the catalog for locale and applies overrides from path, any file
// viper can read (yaml, json, toml). Keys may be written nested
// (users: {created: ...}) or dotted ("users.created": ...).
func Load(locale, path string) (*Catalog, error) {
	c := New(locale)
	if path == "" {
		return c, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read messages file: %w", err)
	}

	// viper lower-cases keys; match them back against the known keys.
	known := make(map[string]Key, len(c.table))
	for k := range c.table {
		known[strings.ToLower(string(k))] = k
	}
	for _, raw := range v.AllKeys() {
		if k, ok := known[raw]; ok {
			c.table[k] = v.GetString(raw)
		}
	}
	return c, nil
}

func (c *Catalog) Locale() string {
	return c.locale
}

// Get returns the text for key, or the key itself if it is unknown.
func (c *Catalog) Get(key Key) string {
	if msg, ok := c.table[key]; ok {
		return msg
	}
	return string(key)
}

// Format returns the text for key with args interpolated.
func (c *Catalog) Format(key Key, args ...interface{}) string {
	return fmt.Sprintf(c.Get(key), args...)
}
