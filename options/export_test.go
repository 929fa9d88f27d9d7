package options

// CompareNilNodes exposes the nil-handle path of compareNodes to tests.
func CompareNilNodes(leftNil, rightNil bool) Relationship {
	var a, b *node
	if !leftNil {
		a = newNode(Option{Price: 1, Time: 1}, nil)
	}
	if !rightNil {
		b = newNode(Option{Price: 2, Time: 2}, nil)
	}

	return compareNodes(a, b)
}
