package simplex

// PermuteLp rewrites the working LP's columns in the deterministic
// random order of ColPermutation. The random stream is reinitialised
// first, so successive runs on the same LP permute identically; the
// column scale factors travel with their columns.
func (m *Model) PermuteLp() {
	if m.Status.IsPermuted {
		return
	}
	m.initialiseRandomVectors()

	sl := m.SimplexLp
	numCol := sl.NumCol
	perm := m.Info.ColPermutation

	saveStart := append([]int(nil), sl.AStart...)
	saveIndex := append([]int(nil), sl.AIndex...)
	saveValue := append([]float64(nil), sl.AValue...)
	saveCost := append([]float64(nil), sl.ColCost...)
	saveLower := append([]float64(nil), sl.ColLower...)
	saveUpper := append([]float64(nil), sl.ColUpper...)
	saveScale := append([]float64(nil), m.Scale.Col...)

	count := 0
	for col := 0; col < numCol; col++ {
		from := perm[col]
		sl.AStart[col] = count
		for k := saveStart[from]; k < saveStart[from+1]; k++ {
			sl.AIndex[count] = saveIndex[k]
			sl.AValue[count] = saveValue[k]
			count++
		}
		sl.ColCost[col] = saveCost[from]
		sl.ColLower[col] = saveLower[from]
		sl.ColUpper[col] = saveUpper[from]
		m.Scale.Col[col] = saveScale[from]
	}
	sl.AStart[numCol] = count

	m.UpdateStatus(ActionPermute)
}
