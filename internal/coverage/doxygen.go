package coverage

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
)

// doxygenCounter counts documentable members in a directory of Doxygen
// per-unit XML files. A member is documented when its brief or detailed
// description carries text anywhere in its subtree; non-public members are
// excluded entirely. Enum members additionally contribute one countable
// unit per enum value.
type doxygenCounter struct{}

// xmlNode is a generic XML element used to walk Doxygen trees without a
// fixed schema.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Chardata string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

// attr returns the value of the named attribute, if present.
func (n *xmlNode) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// child returns the first direct child element with the given name.
func (n *xmlNode) child(name string) *xmlNode {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i]
		}
	}
	return nil
}

// hasText reports whether the element or any of its descendants carries
// non-whitespace character data.
func (n *xmlNode) hasText() bool {
	if n == nil {
		return false
	}
	if strings.TrimSpace(n.Chardata) != "" {
		return true
	}
	for i := range n.Children {
		if n.Children[i].hasText() {
			return true
		}
	}
	return false
}

// descendants calls fn for every descendant element (at any depth) with
// the given name.
func (n *xmlNode) descendants(name string, fn func(*xmlNode)) {
	for i := range n.Children {
		child := &n.Children[i]
		if child.XMLName.Local == name {
			fn(child)
		}
		child.descendants(name, fn)
	}
}

// memberDocumented applies the Doxygen documented test: any text inside
// the brief or detailed description subtree.
func memberDocumented(member *xmlNode) bool {
	return member.child("briefdescription").hasText() ||
		member.child("detaileddescription").hasText()
}

// skippedDoxygenFiles are generated files that hold no member definitions.
var skippedDoxygenFiles = map[string]struct{}{
	"index.xml":    {},
	"Doxyfile.xml": {},
}

func (doxygenCounter) Count(dir string) (Count, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Count{}, &ParseError{Path: dir, Message: "failed to list Doxygen XML directory", Cause: err}
	}

	var count Count
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".xml") {
			continue
		}
		if _, skip := skippedDoxygenFiles[name]; skip {
			continue
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return Count{}, &ParseError{Path: path, Message: "failed to read Doxygen XML", Cause: err}
		}
		var root xmlNode
		if err := xml.Unmarshal(data, &root); err != nil {
			return Count{}, &ParseError{Path: path, Message: "malformed Doxygen XML", Cause: err}
		}
		for i := range root.Children {
			compound := &root.Children[i]
			if compound.XMLName.Local != "compounddef" {
				continue
			}
			compound.descendants("memberdef", func(member *xmlNode) {
				if prot, ok := member.attr("prot"); ok && prot != "public" {
					return
				}
				count.Total++
				if memberDocumented(member) {
					count.Documented++
				}
				if kind, _ := member.attr("kind"); kind == "enum" {
					for j := range member.Children {
						value := &member.Children[j]
						if value.XMLName.Local != "enumvalue" {
							continue
						}
						count.Total++
						if memberDocumented(value) {
							count.Documented++
						}
					}
				}
			})
		}
	}

	return count, nil
}
