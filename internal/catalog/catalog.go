// Package catalog holds the read-only registry of nearby businesses and
// signature experiences. A Catalog never changes after New returns, so it is
// safe to share between sessions without locking.
package catalog

import (
	"fmt"

	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

type clusterKey struct {
	cluster  model.Cluster
	category model.Category
}

// Catalog is an ordered, immutable set of businesses. Catalog order is the
// final tie-break when two candidates rank equally.
type Catalog struct {
	businesses []model.Business
	byName     map[string]int
	byCluster  map[clusterKey][]int
	signatures []model.SignatureExperience
	sigByID    map[string]int
}

// New builds a catalog, rejecting duplicate names or ids and invalid entries.
func New(businesses []model.Business, signatures []model.SignatureExperience) (*Catalog, error) {
	c := &Catalog{
		businesses: make([]model.Business, 0, len(businesses)),
		byName:     make(map[string]int, len(businesses)),
		byCluster:  make(map[clusterKey][]int),
		signatures: make([]model.SignatureExperience, 0, len(signatures)),
		sigByID:    make(map[string]int, len(signatures)),
	}

	for _, b := range businesses {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byName[b.Name]; dup {
			return nil, fmt.Errorf("duplicate business name %q", b.Name)
		}
		i := len(c.businesses)
		c.businesses = append(c.businesses, b.Clone())
		c.byName[b.Name] = i
		k := clusterKey{b.Cluster, b.Category}
		c.byCluster[k] = append(c.byCluster[k], i)
	}

	for _, s := range signatures {
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("signature experience requires id and name")
		}
		if _, dup := c.sigByID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate signature experience id %q", s.ID)
		}
		if _, clash := c.byName[s.Name]; clash {
			return nil, fmt.Errorf("signature experience %q shares a name with a business", s.Name)
		}
		c.sigByID[s.ID] = len(c.signatures)
		c.signatures = append(c.signatures, s)
	}

	return c, nil
}

// Len returns the number of businesses.
func (c *Catalog) Len() int { return len(c.businesses) }

// Businesses returns a copy of every business in catalog order.
func (c *Catalog) Businesses() []model.Business {
	out := make([]model.Business, len(c.businesses))
	for i, b := range c.businesses {
		out[i] = b.Clone()
	}
	return out
}

// Business looks up a business by name.
func (c *Catalog) Business(name string) (model.Business, bool) {
	i, ok := c.byName[name]
	if !ok {
		return model.Business{}, false
	}
	return c.businesses[i].Clone(), true
}

// InCluster returns the businesses of one category within one cluster, in catalog order.
func (c *Catalog) InCluster(cluster model.Cluster, category model.Category) []model.Business {
	idx := c.byCluster[clusterKey{cluster, category}]
	out := make([]model.Business, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.businesses[i].Clone())
	}
	return out
}

// Signatures returns every signature experience in catalog order.
func (c *Catalog) Signatures() []model.SignatureExperience {
	out := make([]model.SignatureExperience, len(c.signatures))
	copy(out, c.signatures)
	return out
}

// Signature looks up a signature experience by id.
func (c *Catalog) Signature(id string) (model.SignatureExperience, bool) {
	i, ok := c.sigByID[id]
	if !ok {
		return model.SignatureExperience{}, false
	}
	return c.signatures[i], true
}

// Document is the serialized form of a catalog used by import and export.
type Document struct {
	Businesses []model.Business            `json:"businesses"`
	Signatures []model.SignatureExperience `json:"signatures"`
}

// Document returns the catalog's contents in catalog order.
func (c *Catalog) Document() Document {
	return Document{Businesses: c.Businesses(), Signatures: c.Signatures()}
}

// FromDocument builds a catalog from its serialized form.
func FromDocument(d Document) (*Catalog, error) {
	return New(d.Businesses, d.Signatures)
}
