package model

// Role names the controller policy a drone runs.
type Role string

const (
	RoleMothership Role = "mothership"
	RoleHarvester  Role = "harvester"
	RoleSoldier    Role = "soldier"
	RoleAttacker   Role = "attacker" // soldier that also changes heading at random while moving
	RoleGunner     Role = "gunner"   // patrols and fires at everything in range without chasing
)
