package arena

// sizeClassTable buckets allocation sizes into a small number of segregated
// free lists: fine-grained linear classes for the common small cells
// (property pairs, short strings) and logarithmic classes above that,
// generalising the teacher's SizeClassConfig (ConfigBalanced) from the
// registry-specific byte ranges to ECMAScript cell sizes.
type sizeClassTable struct {
	thresholds []int32 // thresholds[i] is the max size serviced by class i
}

const (
	smallMin       = 16
	smallMax       = 512
	smallIncrement = 16
	mediumMax      = 16384
)

func defaultSizeClassTable() *sizeClassTable {
	var thresholds []int32
	for sz := int32(smallMin); sz <= smallMax; sz += smallIncrement {
		thresholds = append(thresholds, sz)
	}
	for sz := thresholds[len(thresholds)-1] * 2; sz <= mediumMax; sz *= 2 {
		thresholds = append(thresholds, sz)
	}
	return &sizeClassTable{thresholds: thresholds}
}

// NumClasses returns the number of segregated free lists.
func (t *sizeClassTable) NumClasses() int { return len(t.thresholds) }

// ClassFor returns the index of the smallest class able to hold `size`
// bytes, or NumClasses() if size belongs in the large/unbounded list.
func (t *sizeClassTable) ClassFor(size int32) int {
	for i, th := range t.thresholds {
		if size <= th {
			return i
		}
	}
	return len(t.thresholds)
}
