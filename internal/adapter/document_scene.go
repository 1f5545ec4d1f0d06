package adapter

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/kitbash/renamer/internal/model"
)

// PathSeparator joins object names into full paths, DCC long-name style.
const PathSeparator = "|"

// ErrUnknownRef reports a ref that does not point at a scene object.
var ErrUnknownRef = errors.New("unknown scene object ref")

// sceneDocument is the on-disk YAML shape of a scene.
type sceneDocument struct {
	Selection []string         `yaml:"selection,omitempty"`
	Objects   []objectDocument `yaml:"objects"`
}

type objectDocument struct {
	Name     string           `yaml:"name"`
	Children []objectDocument `yaml:"children,omitempty"`
}

type sceneNode struct {
	name     string
	parent   m.Ref
	children []m.Ref
}

// DocumentScene implements Scene over a YAML scene document held in memory.
// Renames mutate the in-memory tree; Save writes the document back out.
type DocumentScene struct {
	nodes     []sceneNode
	roots     []m.Ref
	selection []m.Ref
	origin    string
	dirty     bool
}

// LoadScene reads and decodes a YAML scene file.
func LoadScene(path string) (*DocumentScene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	scene, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	scene.origin = path

	return scene, nil
}

// ParseScene decodes a YAML scene document from memory.
func ParseScene(data []byte) (*DocumentScene, error) {
	var doc sceneDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	scene := &DocumentScene{}

	for _, obj := range doc.Objects {
		root, err := scene.addNode(obj, m.RefNone)
		if err != nil {
			return nil, err
		}

		scene.roots = append(scene.roots, root)
	}

	if err := scene.Select(doc.Selection); err != nil {
		return nil, err
	}

	return scene, nil
}

func (s *DocumentScene) addNode(obj objectDocument, parent m.Ref) (m.Ref, error) {
	if obj.Name == "" {
		return m.RefNone, fmt.Errorf("scene object with empty name under %q", s.pathOf(parent))
	}

	ref := m.Ref(len(s.nodes))
	s.nodes = append(s.nodes, sceneNode{name: obj.Name, parent: parent})

	for _, child := range obj.Children {
		childRef, err := s.addNode(child, ref)
		if err != nil {
			return m.RefNone, err
		}

		s.nodes[ref].children = append(s.nodes[ref].children, childRef)
	}

	return ref, nil
}

// Select resolves selection specs (full paths or leaf names) against the
// scene, replacing the current selection. A leaf name matches the first
// object with that name in pre-order. Spec order is preserved; specs that
// resolve to an already selected object are dropped, so the selection never
// holds the same ref twice.
func (s *DocumentScene) Select(specs []string) error {
	selection := make([]m.Ref, 0, len(specs))
	seen := make(map[m.Ref]struct{}, len(specs))

	for _, spec := range specs {
		ref, ok := s.find(spec)
		if !ok {
			return fmt.Errorf("no scene object matches %q", spec)
		}

		if _, dup := seen[ref]; dup {
			continue
		}

		seen[ref] = struct{}{}
		selection = append(selection, ref)
	}

	s.selection = selection

	return nil
}

// find locates an object by full path ("|a|b") or by leaf name.
func (s *DocumentScene) find(spec string) (m.Ref, bool) {
	byPath := strings.Contains(spec, PathSeparator)

	var found m.Ref

	ok := false
	s.walk(func(ref m.Ref) {
		if ok {
			return
		}

		if byPath {
			if s.pathOf(ref) == spec {
				found, ok = ref, true
			}

			return
		}

		if s.nodes[ref].name == spec {
			found, ok = ref, true
		}
	})

	return found, ok
}

// walk visits every object pre-order, roots first.
func (s *DocumentScene) walk(visit func(m.Ref)) {
	var descend func(m.Ref)

	descend = func(ref m.Ref) {
		visit(ref)

		for _, child := range s.nodes[ref].children {
			descend(child)
		}
	}

	for _, root := range s.roots {
		descend(root)
	}
}

// Selection implements Scene.
func (s *DocumentScene) Selection() []m.Ref {
	out := make([]m.Ref, len(s.selection))
	copy(out, s.selection)

	return out
}

// Roots implements Scene.
func (s *DocumentScene) Roots() []m.Ref {
	out := make([]m.Ref, len(s.roots))
	copy(out, s.roots)

	return out
}

// Children implements Scene.
func (s *DocumentScene) Children(ref m.Ref) []m.Ref {
	if !s.valid(ref) {
		return nil
	}

	out := make([]m.Ref, len(s.nodes[ref].children))
	copy(out, s.nodes[ref].children)

	return out
}

// Name implements Scene.
func (s *DocumentScene) Name(ref m.Ref) (string, error) {
	if !s.valid(ref) {
		return "", fmt.Errorf("%w: %d", ErrUnknownRef, ref)
	}

	return s.nodes[ref].name, nil
}

// SetName implements Scene. It enforces the host name policy: non-empty, no
// path separator, unique among siblings.
func (s *DocumentScene) SetName(ref m.Ref, name string) error {
	if !s.valid(ref) {
		return fmt.Errorf("%w: %d", ErrUnknownRef, ref)
	}

	if name == "" {
		return fmt.Errorf("rejected empty name for %q", s.pathOf(ref))
	}

	if strings.Contains(name, PathSeparator) {
		return fmt.Errorf("rejected name %q: must not contain %q", name, PathSeparator)
	}

	for _, sibling := range s.siblings(ref) {
		if sibling != ref && s.nodes[sibling].name == name {
			return fmt.Errorf("rejected name %q: duplicate among siblings of %q", name, s.pathOf(ref))
		}
	}

	s.nodes[ref].name = name
	s.dirty = true

	return nil
}

// Dirty reports whether any rename has been applied since the scene was
// loaded. Renames survive in memory even when the session log is cleared,
// so persistence decisions key on this rather than on a history listing.
func (s *DocumentScene) Dirty() bool {
	return s.dirty
}

// Path implements Scene.
func (s *DocumentScene) Path(ref m.Ref) (string, error) {
	if !s.valid(ref) {
		return "", fmt.Errorf("%w: %d", ErrUnknownRef, ref)
	}

	return s.pathOf(ref), nil
}

// Save writes the scene back to the file it was loaded from.
func (s *DocumentScene) Save() error {
	if s.origin == "" {
		return errors.New("scene has no origin file")
	}

	return s.SaveTo(s.origin)
}

// SaveTo encodes the scene document and writes it to path.
func (s *DocumentScene) SaveTo(path string) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}

	return nil
}

// Encode renders the current tree and selection as a YAML document.
func (s *DocumentScene) Encode() ([]byte, error) {
	doc := sceneDocument{}

	for _, ref := range s.selection {
		doc.Selection = append(doc.Selection, s.pathOf(ref))
	}

	for _, root := range s.roots {
		doc.Objects = append(doc.Objects, s.encodeNode(root))
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scene: %w", err)
	}

	return data, nil
}

func (s *DocumentScene) encodeNode(ref m.Ref) objectDocument {
	obj := objectDocument{Name: s.nodes[ref].name}

	for _, child := range s.nodes[ref].children {
		obj.Children = append(obj.Children, s.encodeNode(child))
	}

	return obj
}

func (s *DocumentScene) valid(ref m.Ref) bool {
	return ref >= 0 && int(ref) < len(s.nodes)
}

func (s *DocumentScene) siblings(ref m.Ref) []m.Ref {
	parent := s.nodes[ref].parent
	if parent == m.RefNone {
		return s.roots
	}

	return s.nodes[parent].children
}

// pathOf derives the full path from the live names of ref and its ancestors.
func (s *DocumentScene) pathOf(ref m.Ref) string {
	if !s.valid(ref) {
		return ""
	}

	var names []string
	for cur := ref; cur != m.RefNone; cur = s.nodes[cur].parent {
		names = append(names, s.nodes[cur].name)
	}

	var b strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		b.WriteString(PathSeparator)
		b.WriteString(names[i])
	}

	return b.String()
}
