package gameplay

import "spacemerc/pkg/game/state"

// EnergyPerShot is what one laser blast costs.
const EnergyPerShot = 2

// FireWeapon shoots the laser straight ahead. It damages the first NPC in the
// line of fire, or failing that the first wall. It reports whether a shot was
// fired.
func FireWeapon(s *state.Session) bool {
	if !active(s) || s.Player.Stats[state.CurrentEnergy] < EnergyPerShot {
		return false
	}
	AdjustCurrentEnergy(s, -EnergyPerShot)
	s.WeaponAnimation = state.WeaponAnimationSteps
	s.LaserBaseWidth = state.MaxLaserBaseWidth

	power := s.Player.Stats[state.Power]
	d := s.Player.Direction
	p := s.Player.Position.Step(d, 1)
	for !s.CellType(p).IsSolid() {
		if slot, ok := s.Mission.NPCAt(p); ok {
			DamageNPC(s, slot, power)
			return true
		}
		p = p.Step(d, 1)
	}
	DamageCell(s, p, power)
	return true
}

// AdvanceWeaponAnimation moves the laser one frame on. It reports whether the
// laser is still visible.
func AdvanceWeaponAnimation(s *state.Session) bool {
	if s.WeaponAnimation <= 0 {
		return false
	}
	s.WeaponAnimation--
	if s.WeaponAnimation > 0 {
		s.LaserBaseWidth = state.MinLaserBaseWidth
		return true
	}
	return false
}
