package prefixcode

import (
	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/prefixcode/heap"
)

// BuildHuffman validates the alphabet and builds its Huffman code.
func BuildHuffman[S comparable](symbols []S, weights []float64) (*CodeTable[S], error) {
	return Build(Huffman, symbols, weights)
}

// treeNode is a node of the Huffman tree.  Nodes live in an arena and refer
// to each other by arena index.  Leaves occupy arena slots [0, n) in
// FrequencyTable order and carry that index as their symbol; internal nodes
// are appended as they are created and have symbol == invalidIndex.
type treeNode struct {
	weight float64
	symbol symbolIndex
	left   int32
	right  int32
}

func (node treeNode) isLeaf() bool {
	return node.symbol != invalidIndex
}

// nodeRef is the heap item for a tree node.
//
// Ties on weight are broken by arena index, so leaves are merged before
// internal nodes of equal weight, lighter-or-earlier leaves before later
// ones, and older internal nodes before newer ones.
type nodeRef struct {
	weight float64
	index  int32
}

func (a nodeRef) Less(b nodeRef) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.index < b.index
}

var _ heap.Lesser[nodeRef] = nodeRef{}

// huffmanCodes assigns a Code to every entry of ft by building a Huffman
// tree.  codes[i] is the Code for ft.At(i).
func huffmanCodes[S comparable](ft FrequencyTable[S]) []Code {
	numSymbols := ft.Len()
	codes := make([]Code, numSymbols)
	if numSymbols == 0 {
		return codes
	}

	// Step 1: one leaf per symbol, all of them in the heap.

	nodes := make([]treeNode, 0, 2*numSymbols-1)
	h, err := heap.NewWithCapacity[nodeRef](numSymbols)
	assert.Assertf(err == nil, "heap.NewWithCapacity(%d): %v", numSymbols, err)

	for i := 0; i < numSymbols; i++ {
		weight := ft.At(i).Weight
		nodes = append(nodes, treeNode{weight: weight, symbol: symbolIndex(i), left: -1, right: -1})
		h.Insert(nodeRef{weight, int32(i)})
	}

	// Step 2: merge the two lightest nodes until only the root remains.

	for h.Len() > 1 {
		first := mustExtractMin(h)
		second := mustExtractMin(h)

		index := int32(len(nodes))
		weight := first.weight + second.weight
		nodes = append(nodes, treeNode{weight: weight, symbol: invalidIndex, left: first.index, right: second.index})
		h.Insert(nodeRef{weight, index})
	}

	root := mustExtractMin(h)
	assert.Assertf(len(nodes) == 2*numSymbols-1, "built %d nodes for %d symbols", len(nodes), numSymbols)

	// Step 3: walk the tree, "0" to the left and "1" to the right.  With
	// a single symbol the root is a leaf and its code is empty.

	type stackItem struct {
		index int32
		path  Code
	}

	stack := make([]stackItem, 0, log2uint32(uint32(numSymbols))+1)
	stack = append(stack, stackItem{root.index, Code{}})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := nodes[top.index]
		if node.isLeaf() {
			codes[node.symbol] = top.path
			continue
		}
		stack = append(stack,
			stackItem{node.right, top.path.Append(1)},
			stackItem{node.left, top.path.Append(0)})
	}

	return codes
}

func mustExtractMin(h *heap.Heap[nodeRef]) nodeRef {
	ref, err := h.ExtractMin()
	assert.Assertf(err == nil, "heap.ExtractMin: %v", err)
	return ref
}
