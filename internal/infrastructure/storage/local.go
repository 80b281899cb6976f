// Package storage guarda archivos subidos (imágenes de productos, fotos de
// empleados, avatares) en el disco local y los expone bajo un prefijo público.
package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tu-usuario/resto-crm/pkg/config"
)

// Extensiones de imagen aceptadas.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// LocalStore guarda archivos bajo un directorio raíz con nombres generados.
type LocalStore struct {
	dir       string
	publicURL string
}

// NewLocalStore construye el almacén y crea el directorio si no existe.
func NewLocalStore(cfg config.UploadsConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStore{dir: cfg.Dir, publicURL: strings.TrimRight(cfg.PublicURL, "/")}, nil
}

// Dir devuelve el directorio raíz en disco, para montarlo como estático.
func (s *LocalStore) Dir() string { return s.dir }

// Save escribe los bytes con un nombre UUID y la extensión original,
// y devuelve la URL pública del archivo.
func (s *LocalStore) Save(originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("unsupported file extension %q", ext)
	}
	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return path.Join(s.publicURL, name), nil
}

// Remove elimina un archivo a partir de su URL pública. Ignora rutas que no
// pertenecen al almacén.
func (s *LocalStore) Remove(publicPath string) error {
	if !strings.HasPrefix(publicPath, s.publicURL+"/") {
		return nil
	}
	name := filepath.Base(publicPath)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}
