package dag

// ConsensusEngine computes the GHOSTDAG fields (SelectedParent's
// classification aside, which the Store already fixed via I4) for a
// freshly structurally-validated block: Mergeset, BlueSet and
// BlueScore for b, and IsBlue for any ancestor it newly classifies
// (b's own IsBlue keeps its provisional value from creation).
//
// Compute must leave b and the store untouched on error so Add can
// reject the block without a partial write (I7).
//
// Defined here, in dag, rather than in the ghostdag package that
// implements it, so that dag never imports ghostdag — ghostdag
// imports dag to satisfy this interface instead.
type ConsensusEngine interface {
	Compute(s *Store, b *Block) error
}
