package hybrid

import (
	"github.com/asymmetrica/rotaforge/internal/atomstore"
	"github.com/asymmetrica/rotaforge/internal/geometry"
	"github.com/asymmetrica/rotaforge/internal/registry"
)

// idealBondLength gives the typical heavy-atom-to-hydrogen bond length
// (Angstrom), generalizing the teacher's BondN_H/BondCA_H constants to
// every element a hydrogen attaches to.
func idealBondLength(heavyElement string) float64 {
	switch heavyElement {
	case "N":
		return 1.01
	case "O":
		return 0.96
	case "S":
		return 1.34
	case "C":
		return 1.09
	default:
		return 1.00
	}
}

// heavyNeighbors returns the bonded atoms of a whose element is not
// hydrogen, looked up in store.
func heavyNeighbors(a *atomstore.Atom, store *atomstore.Store) []*atomstore.Atom {
	var out []*atomstore.Atom
	for id := range a.Connections {
		n := store.Lookup(id)
		if n != nil && n.Element != "H" {
			out = append(out, n)
		}
	}
	return out
}

// donorDirection computes the unit direction in which a hydrogen attached
// to heavy should point, given heavy's already-bonded heavy neighbors.
//
// With two or more heavy neighbors, the direction is the bisector method
// the teacher uses for backbone amide hydrogens: normalize each bond
// vector away from the neighbor, sum, and normalize again -- this places
// the hydrogen roughly opposite the neighbors' combined pull, matching the
// sp2/sp3 donor angle alpha without needing the exact tetrahedral angle.
//
// With exactly one heavy neighbor (a terminal heavy atom such as a
// hydroxyl oxygen), there is no second bond vector to bisect against, so
// the direction is built from a vector perpendicular to the single bond
// (the cross product with +z, or +y when the bond is near the z axis):
// 0.5*bond + 0.866*perp, i.e. 60 degrees off the bond axis, pointing away
// from the neighbor.
func donorDirection(heavy *atomstore.Atom, neighbors []*atomstore.Atom) geometry.Vector3 {
	switch len(neighbors) {
	case 0:
		return geometry.Vector3{X: 0, Y: 0, Z: 1}
	case 1:
		bond := heavy.Position().Sub(neighbors[0].Position()).Normalize()
		fallback := geometry.Vector3{X: 0, Y: 0, Z: 1}
		perp := bond.Cross(fallback)
		if perp.Length() < 0.1 {
			fallback = geometry.Vector3{X: 0, Y: 1, Z: 0}
			perp = bond.Cross(fallback)
		}
		// Tilt away from the single bond so the hydrogen doesn't eclipse it.
		return bond.Scale(0.5).Add(perp.Normalize().Scale(0.866)).Normalize()
	default:
		sum := geometry.Vector3{}
		for _, n := range neighbors {
			sum = sum.Add(heavy.Position().Sub(n.Position()).Normalize())
		}
		dir := sum.Normalize()
		if dir.Length() < 1e-9 {
			// Neighbors bonds cancel out (perfectly linear arrangement):
			// fall back to a perpendicular direction from the first neighbor.
			bond := heavy.Position().Sub(neighbors[0].Position()).Normalize()
			return bond.Cross(geometry.Vector3{X: 0, Y: 0, Z: 1}).Normalize()
		}
		return dir
	}
}

// PlaceHydrogens synthesizes hydrogen atom records for every heavy atom in
// residues that the parameter registry's HydrogenNames table says carries
// one, inserting them into store with freshly minted ids and a symmetric
// bond back to the heavy atom. It returns the number of hydrogens placed.
func PlaceHydrogens(store *atomstore.Store, tables *registry.Tables) int {
	placed := 0
	for _, heavy := range store.All() {
		if heavy.IsPseudo || heavy.Element == "H" {
			continue
		}
		names := tables.HydrogenNamesFor(heavy.CompID, heavy.Name)
		if len(names) == 0 {
			continue
		}

		existing := 0
		for id := range heavy.Connections {
			if n := store.Lookup(id); n != nil && n.Element == "H" {
				existing++
			}
		}
		if existing >= len(names) {
			continue
		}

		neighbors := heavyNeighbors(heavy, store)
		dir := donorDirection(heavy, neighbors)
		length := idealBondLength(heavy.Element)

		for i := existing; i < len(names); i++ {
			pos := heavy.Position().Add(dir.Scale(length))
			h := &atomstore.Atom{
				ID:       store.NextID(),
				GroupPDB: heavy.GroupPDB,
				Element:  "H",
				CompID:   heavy.CompID,
				SeqID:    heavy.SeqID,
				Chain:    heavy.Chain,
				EntityID: heavy.EntityID,
				AltID:    heavy.AltID,
				ModelNum: heavy.ModelNum,
				X:        pos.X,
				Y:        pos.Y,
				Z:        pos.Z,
				Name:     names[i],
			}
			store.Insert(h)
			h.AddConnection(heavy.ID)
			heavy.AddConnection(h.ID)
			placed++
		}
	}
	return placed
}
