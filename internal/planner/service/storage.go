package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidName  = errors.New("invalid name")
)

// ============================================================
// File Storage
// ============================================================

// FileStorage раскладывает файлы проекта так:
//
//	<root>/<project_id>/<wall_id>_<original_filename>
//	<root>/<project_id>/renders/<wall_id>_render.png
//
// Запись не атомарная: повторная загрузка перезаписывает файл на месте.
type FileStorage struct {
	root string
}

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{root: root}
}

func (s *FileStorage) Root() string {
	return s.root
}

func (s *FileStorage) ProjectDir(projectID string) string {
	return filepath.Join(s.root, projectID)
}

// WallImagePath отбрасывает каталоги из имени файла, чтобы загрузка
// не вышла за пределы каталога проекта.
func (s *FileStorage) WallImagePath(projectID, wallID, originalFilename string) string {
	return filepath.Join(s.ProjectDir(projectID), wallID+"_"+filepath.Base(originalFilename))
}

func (s *FileStorage) RendersDir(projectID string) string {
	return filepath.Join(s.ProjectDir(projectID), "renders")
}

func (s *FileStorage) RenderPath(projectID, wallID string) string {
	return filepath.Join(s.RendersDir(projectID), wallID+"_render.png")
}

// ValidName сообщает, годится ли id как один элемент пути внутри хранилища.
func ValidName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

func checkNames(names ...string) error {
	for _, name := range names {
		if !ValidName(name) {
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return nil
}

// within проверяет, что путь лежит внутри корня хранилища.
func (s *FileStorage) within(path string) error {
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s escapes storage root", ErrInvalidName, path)
	}
	return nil
}

func (s *FileStorage) EnsureRoot() error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("mkdir storage root: %w", err)
	}
	return nil
}

func (s *FileStorage) EnsureDir(projectID string) error {
	path := s.ProjectDir(projectID)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdir project dir: %w", err)
	}
	return nil
}

func (s *FileStorage) EnsureRendersDir(projectID string) error {
	path := s.RendersDir(projectID)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdir renders dir: %w", err)
	}
	return nil
}

// SaveWallImage сохраняет исходное фото стены и возвращает путь к нему.
func (s *FileStorage) SaveWallImage(projectID, wallID string, data []byte, originalFilename string) (string, error) {
	if err := checkNames(projectID, wallID); err != nil {
		return "", err
	}
	target := s.WallImagePath(projectID, wallID, originalFilename)
	if err := s.within(target); err != nil {
		return "", err
	}
	if err := s.EnsureDir(projectID); err != nil {
		return "", err
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("write wall image: %w", err)
	}
	return target, nil
}

// SaveRenderedWall всегда перезаписывает предыдущий рендер стены.
func (s *FileStorage) SaveRenderedWall(projectID, wallID string, data []byte) (string, error) {
	if err := checkNames(projectID, wallID); err != nil {
		return "", err
	}
	target := s.RenderPath(projectID, wallID)
	if err := s.within(target); err != nil {
		return "", err
	}
	if err := s.EnsureRendersDir(projectID); err != nil {
		return "", err
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("write render: %w", err)
	}
	return target, nil
}

func (s *FileStorage) Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func (s *FileStorage) RenderExists(projectID, wallID string) bool {
	if checkNames(projectID, wallID) != nil {
		return false
	}
	return fileExists(s.RenderPath(projectID, wallID))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
