package mastery

// Bucket groups adjacent active levels for review rotation.
type Bucket int

const (
	BucketBeginner     Bucket = iota // levels 1-2
	BucketElementary                 // levels 3-4
	BucketIntermediate               // levels 5-6
	BucketAdvanced                   // levels 7-8
	BucketExpert                     // levels 9-10
)

// NumBuckets is the number of review buckets.
const NumBuckets = 5

// BucketOf maps an active level to its bucket. ok is false for levels that
// are never reviewed.
func BucketOf(l Level) (b Bucket, ok bool) {
	switch l {
	case Level1, Level2:
		return BucketBeginner, true
	case Level3, Level4:
		return BucketElementary, true
	case Level5, Level6:
		return BucketIntermediate, true
	case Level7, Level8:
		return BucketAdvanced, true
	case Level9, Level10:
		return BucketExpert, true
	case LevelNew, LevelRetired:
		return 0, false
	}
	return 0, false
}

func (b Bucket) String() string {
	switch b {
	case BucketBeginner:
		return "1-2"
	case BucketElementary:
		return "3-4"
	case BucketIntermediate:
		return "5-6"
	case BucketAdvanced:
		return "7-8"
	case BucketExpert:
		return "9-10"
	}
	return "unknown"
}
