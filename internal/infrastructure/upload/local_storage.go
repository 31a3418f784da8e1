// Package upload implementa el almacenamiento local de archivos adjuntos
// (facturas de compra y documentos de soporte). El core solo guarda la
// referencia opaca (URL + nombre original); nunca abre el contenido.
package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize tamaño máximo aceptado para un adjunto (5 MB).
const MaxFileSize = 5 * 1024 * 1024

// allowedExtensions formatos aceptados: PDF e imágenes.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// StoredFile referencia opaca a un archivo guardado.
type StoredFile struct {
	URL  string // ruta pública, ej. /uploads/<uuid>.pdf
	Name string // nombre original del archivo
}

// LocalStorage guarda archivos en un directorio local con nombres UUID
// (el nombre original se conserva solo como metadato).
type LocalStorage struct {
	dir string
}

// NewLocalStorage crea el directorio si no existe y devuelve el storage.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Dir devuelve el directorio donde se guardan los archivos.
func (s *LocalStorage) Dir() string { return s.dir }

// Save valida extensión y tamaño, y escribe el contenido con un nombre UUID.
func (s *LocalStorage) Save(originalName string, content []byte) (*StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("formato de archivo no soportado: %q", ext)
	}
	if len(content) > MaxFileSize {
		return nil, fmt.Errorf("archivo demasiado grande: %d bytes (máx %d)", len(content), MaxFileSize)
	}

	fileName := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, fileName), content, 0o644); err != nil {
		return nil, fmt.Errorf("guardar archivo: %w", err)
	}
	return &StoredFile{
		URL:  "/uploads/" + fileName,
		Name: originalName,
	}, nil
}
