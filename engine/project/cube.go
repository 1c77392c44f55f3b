package project

import "spincube/engine/fixtrig"

// CubeVertices are the unit cube corners: back face 0..3, front face 4..7.
var CubeVertices = [8]Vertex3D{
	{-fixtrig.One, -fixtrig.One, -fixtrig.One},
	{fixtrig.One, -fixtrig.One, -fixtrig.One},
	{fixtrig.One, fixtrig.One, -fixtrig.One},
	{-fixtrig.One, fixtrig.One, -fixtrig.One},
	{-fixtrig.One, -fixtrig.One, fixtrig.One},
	{fixtrig.One, -fixtrig.One, fixtrig.One},
	{fixtrig.One, fixtrig.One, fixtrig.One},
	{-fixtrig.One, fixtrig.One, fixtrig.One},
}

// CubeEdges index CubeVertices: back ring, front ring, then the four
// connecting edges.
var CubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}
