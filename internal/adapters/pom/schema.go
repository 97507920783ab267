package pom

import "encoding/xml"

// project represents the subset of a pom.xml needed to list dependencies.
// Pointer fields distinguish a missing element from an empty one.
type project struct {
	XMLName    xml.Name   `xml:"project"`
	GroupID    *string    `xml:"groupId"`
	ArtifactID *string    `xml:"artifactId"`
	Version    *string    `xml:"version"`
	Parent     parent     `xml:"parent"`
	Properties properties `xml:"properties"`

	Dependencies []dependency `xml:"dependencies>dependency"`
	Managed      []dependency `xml:"dependencyManagement>dependencies>dependency"`
}

type parent struct {
	GroupID    *string `xml:"groupId"`
	ArtifactID *string `xml:"artifactId"`
	Version    *string `xml:"version"`
}

type dependency struct {
	GroupID    *string `xml:"groupId"`
	ArtifactID *string `xml:"artifactId"`
	Version    *string `xml:"version"`
	Type       *string `xml:"type"`
	Scope      *string `xml:"scope"`
}

// properties collects the free-form children of <properties>.
type properties map[string]string

// UnmarshalXML implements xml.Unmarshaler.
func (p *properties) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	*p = properties{}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			(*p)[t.Name.Local] = value
		case xml.EndElement:
			return nil
		}
	}
}
