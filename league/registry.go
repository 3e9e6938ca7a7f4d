/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"fmt"
	"sort"
)

// Registry owns the club's player records, keyed by name.
type Registry struct {
	players map[string]*Player
	nextID  int
}

func NewRegistry() *Registry {
	return &Registry{
		players: make(map[string]*Player),
	}
}

// Add inserts a player. The player's name must not already be registered.
func (reg *Registry) Add(p *Player) error {
	if _, ok := reg.players[p.Name]; ok {
		return fmt.Errorf("add %v: %w", p.Name, ErrDuplicateName)
	}
	reg.players[p.Name] = p
	if p.ID >= reg.nextID {
		reg.nextID = p.ID + 1
	}
	return nil
}

// Remove deletes a player by name. A player currently engaged in an
// unresolved match cannot be removed; resolve the match first.
func (reg *Registry) Remove(name string) error {
	p, ok := reg.players[name]
	if !ok {
		return fmt.Errorf("remove %v: %w", name, ErrPlayerNotFound)
	}
	if !p.Available {
		return fmt.Errorf("remove %v: %w", name, ErrPlayerEngaged)
	}
	delete(reg.players, name)
	return nil
}

// Get looks up a player by name.
func (reg *Registry) Get(name string) (*Player, error) {
	p, ok := reg.players[name]
	if !ok {
		return nil, fmt.Errorf("get %v: %w", name, ErrPlayerNotFound)
	}
	return p, nil
}

// NextID returns the id the next registered player should receive.
func (reg *Registry) NextID() int {
	return reg.nextID
}

// Len returns the number of registered players.
func (reg *Registry) Len() int {
	return len(reg.players)
}

// Names returns every registered player name in sorted order.
func (reg *Registry) Names() []string {
	var names []string
	for name := range reg.players {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailablePlayers returns every player eligible for pairing, sorted by
// rating then name. The sort keeps pairing deterministic even when
// ratings are tied; map iteration order alone would not be.
func (reg *Registry) AvailablePlayers() []*Player {
	var pool []*Player
	for _, p := range reg.players {
		if p.Available {
			pool = append(pool, p)
		}
	}
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].Rating != pool[j].Rating {
			return pool[i].Rating < pool[j].Rating
		}
		return pool[i].Name < pool[j].Name
	})
	return pool
}

// AllPlayers returns every registered player sorted by descending rating,
// ties broken by name. Used for roster output and persistence.
func (reg *Registry) AllPlayers() []*Player {
	var all []*Player
	for _, p := range reg.players {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Rating != all[j].Rating {
			return all[i].Rating > all[j].Rating
		}
		return all[i].Name < all[j].Name
	})
	return all
}
