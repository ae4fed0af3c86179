package notebook

// Document is an ordered sequence of blocks. Order is preserved on write.
type Document struct {
	blocks []Block
}

// Assemble concatenates blocks in the given order.
// No deduplication or reordering is applied.
func Assemble(blocks ...Block) Document {
	out := make([]Block, len(blocks))
	copy(out, blocks)
	return Document{blocks: out}
}

// Len returns the number of blocks.
func (d Document) Len() int { return len(d.blocks) }

// Block returns the block at index i.
func (d Document) Block(i int) Block { return d.blocks[i] }

// Blocks returns a copy of the block sequence.
func (d Document) Blocks() []Block {
	out := make([]Block, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// Kinds returns the discriminator of every block, in order.
func (d Document) Kinds() []Kind {
	kinds := make([]Kind, len(d.blocks))
	for i, b := range d.blocks {
		kinds[i] = b.kind
	}
	return kinds
}
