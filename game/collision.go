package game

// Hit records the aliens destroyed by one bullet
type Hit struct {
	Bullet *Bullet
	Aliens []*Alien
}

// Eliminated returns the total number of aliens destroyed across hits
func Eliminated(hits []Hit) int {
	n := 0
	for _, h := range hits {
		n += len(h.Aliens)
	}
	return n
}

// ResolveBulletAlien removes every overlapping bullet and alien, each exactly once.
// A bullet that overlaps several aliens destroys all of them; an alien overlapped by
// several bullets is credited to the first bullet in insertion order.
func ResolveBulletAlien(bullets *Group[*Bullet], aliens *Group[*Alien]) []Hit {
	if bullets.Empty() || aliens.Empty() {
		return nil
	}

	var hits []Hit
	deadAliens := make(map[*Alien]struct{})
	deadBullets := make(map[*Bullet]struct{})

	for bullet := range bullets.All() {
		box := bullet.Bounds()

		var struck []*Alien
		for alien := range aliens.All() {
			if _, dead := deadAliens[alien]; dead {
				continue
			}
			if box.Overlaps(alien.Bounds()) {
				struck = append(struck, alien)
				deadAliens[alien] = struct{}{}
			}
		}

		if len(struck) > 0 {
			hits = append(hits, Hit{Bullet: bullet, Aliens: struck})
			deadBullets[bullet] = struct{}{}
		}
	}

	bullets.RemoveSet(deadBullets)
	aliens.RemoveSet(deadAliens)
	return hits
}

// ShipCollides reports whether the ship overlaps any alien
func ShipCollides(ship *Ship, aliens *Group[*Alien]) bool {
	box := ship.Bounds()
	for alien := range aliens.All() {
		if box.Overlaps(alien.Bounds()) {
			return true
		}
	}
	return false
}

// AliensReachedBottom reports whether any alien's bottom edge reaches the given line
func AliensReachedBottom(aliens *Group[*Alien], bottom int) bool {
	for alien := range aliens.All() {
		if alien.Bounds().Max.Y >= bottom {
			return true
		}
	}
	return false
}
