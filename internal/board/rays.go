package board

// Ray directions. Ascending directions walk toward higher square indices and
// find their nearest blocker with LSB; the others use MSB.
const (
	dirUp = iota
	dirDown
	dirLeft
	dirRight
	dirUpRight
	dirDownRight
	dirUpLeft
	dirDownLeft
	numDirs
)

var (
	dirFile      = [numDirs]int{0, 0, -1, 1, 1, 1, -1, -1}
	dirRank      = [numDirs]int{1, -1, 0, 0, 1, -1, 1, -1}
	dirAscending = [numDirs]bool{true, false, false, true, true, false, true, false}
	dirOpposite  = [numDirs]int{dirDown, dirUp, dirRight, dirLeft, dirDownLeft, dirUpLeft, dirDownRight, dirUpRight}

	// rays[dir][sq] holds every square from sq (exclusive) to the board edge.
	rays [numDirs][NumSquares]Bitboard

	betweenBB [NumSquares][NumSquares]Bitboard // squares strictly between two aligned squares
	lineBB    [NumSquares][NumSquares]Bitboard // full line through two aligned squares
)

func initRays() {
	for sq := Square(0); sq < NoSquare; sq++ {
		for dir := 0; dir < numDirs; dir++ {
			var ray Bitboard
			f, r := sq.File()+dirFile[dir], sq.Rank()+dirRank[dir]
			for f >= 0 && f < NumFiles && r >= 0 && r < NumRanks {
				ray = ray.Set(NewSquare(f, r))
				f += dirFile[dir]
				r += dirRank[dir]
			}
			rays[dir][sq] = ray
		}
	}

	for a := Square(0); a < NoSquare; a++ {
		for dir := 0; dir < numDirs; dir++ {
			line := rays[dir][a].Or(rays[dirOpposite[dir]][a]).Set(a)
			for b := range rays[dir][a].Squares() {
				betweenBB[a][b] = rays[dir][a].AndNot(rays[dir][b]).Clear(b)
				lineBB[a][b] = line
			}
		}
	}
}

// Between returns the squares strictly between two squares.
// Returns empty if the squares do not share a rank, file or diagonal.
func Between(a, b Square) Bitboard {
	return betweenBB[a][b]
}

// Line returns the full line through two squares.
// Returns empty if the squares are not aligned.
func Line(a, b Square) Bitboard {
	return lineBB[a][b]
}

// Aligned returns true if three squares are on the same line.
func Aligned(a, b, c Square) bool {
	return lineBB[a][b].IsSet(c)
}

// rayAttack scans one ray from sq and cuts it after the nearest blocker.
func rayAttack(dir int, sq Square, occ Bitboard) Bitboard {
	ray := rays[dir][sq]
	blockers := ray.And(occ)
	if blockers.IsEmpty() {
		return ray
	}
	var blocker Square
	if dirAscending[dir] {
		blocker = blockers.LSB()
	} else {
		blocker = blockers.MSB()
	}
	return ray.Xor(rays[dir][blocker])
}

// blockerMask is the ray minus its final square: occupancy there never changes the attack.
func blockerMask(dir int, sq Square) Bitboard {
	ray := rays[dir][sq]
	if ray.IsEmpty() {
		return ray
	}
	if dirAscending[dir] {
		return ray.Clear(ray.MSB())
	}
	return ray.Clear(ray.LSB())
}

func lanceDir(c Color) int {
	if c == Sente {
		return dirUp
	}
	return dirDown
}

func lanceMask(sq Square, c Color) Bitboard {
	return blockerMask(lanceDir(c), sq)
}

func bishopMask(sq Square) Bitboard {
	return blockerMask(dirUpRight, sq).
		Or(blockerMask(dirDownRight, sq)).
		Or(blockerMask(dirUpLeft, sq)).
		Or(blockerMask(dirDownLeft, sq))
}

func rookMask(sq Square) Bitboard {
	return blockerMask(dirUp, sq).
		Or(blockerMask(dirDown, sq)).
		Or(blockerMask(dirLeft, sq)).
		Or(blockerMask(dirRight, sq))
}

// rayScan is the reference slider backend: no tables beyond the rays.
type rayScan struct{}

func (rayScan) Lance(sq Square, c Color, occ Bitboard) Bitboard {
	return rayAttack(lanceDir(c), sq, occ)
}

func (rayScan) Bishop(sq Square, occ Bitboard) Bitboard {
	return rayAttack(dirUpRight, sq, occ).
		Or(rayAttack(dirDownRight, sq, occ)).
		Or(rayAttack(dirUpLeft, sq, occ)).
		Or(rayAttack(dirDownLeft, sq, occ))
}

func (rayScan) Rook(sq Square, occ Bitboard) Bitboard {
	return rayAttack(dirUp, sq, occ).
		Or(rayAttack(dirDown, sq, occ)).
		Or(rayAttack(dirLeft, sq, occ)).
		Or(rayAttack(dirRight, sq, occ))
}
