package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// El middleware de Swagger lee docs/swagger.json al arrancar y entra en pánico
// si el archivo falta o no parsea. Estos tests garantizan que el documento
// versionado sigue siendo válido y cubre las rutas principales.
// ──────────────────────────────────────────────────────────────────────────────

func TestSwaggerJSON_ExisteYParsea(t *testing.T) {
	doc := loadSwaggerDoc(t)

	assert.Equal(t, "2.0", doc["swagger"])
	assert.Equal(t, "/", doc["basePath"])

	info, ok := doc["info"].(map[string]any)
	require.True(t, ok, "el documento debe tener bloque info")
	assert.NotEmpty(t, info["title"])
}

func TestSwaggerJSON_CubreLasRutasPrincipales(t *testing.T) {
	doc := loadSwaggerDoc(t)

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok, "el documento debe tener bloque paths")

	rutas := []string{
		"/api/auth/login",
		"/api/site/menu",
		"/api/site/checkout",
		"/api/stock/items",
		"/api/stock/movements",
		"/api/documents/purchases/{id}/post",
		"/api/documents/inventories/{id}/fill",
		"/api/catalog/products",
		"/api/pos/orders/{id}/pay",
		"/api/delivery/orders/{id}/receipt",
		"/api/customers/{id}/points",
		"/api/employees/{id}/shifts",
		"/api/dashboard/summary",
		"/api/users",
	}
	for _, ruta := range rutas {
		assert.Contains(t, paths, ruta)
	}
}

// loadSwaggerDoc localiza docs/swagger.json desde la raíz del módulo, porque
// go test ejecuta los tests dentro de cmd/api.
func loadSwaggerDoc(t *testing.T) map[string]any {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	root := filepath.Join(filepath.Dir(thisFile), "..", "..")

	raw, err := os.ReadFile(filepath.Join(root, "docs", "swagger.json"))
	require.NoError(t, err, "docs/swagger.json debe estar versionado")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc), "docs/swagger.json debe ser JSON válido")
	return doc
}
