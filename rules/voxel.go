package rules

const (
	// SurviveScore is the exact neighbor count that keeps a live cell alive
	SurviveScore = 9
	// BirthScore is the exact neighbor count that brings a dead cell to life
	BirthScore = 4
)

/*
ApplyVoxelRules applies the 3D voxel rule to determine the next state of a cell.

Voxel rules: (alive && neighbors == 9) || (!alive && neighbors == 4)

Neighbors range over the 26 cells of the surrounding cube, so these are
not the Conway thresholds scaled up. They are kept exactly as is.
*/
func ApplyVoxelRules(neighbors int, alive bool) bool {
	return (alive && neighbors == SurviveScore) || (!alive && neighbors == BirthScore)
}
