package geom

// Matrix4 is a 4x4 matrix of float64, stored row-major as mRC (row R, column C).
type Matrix4 struct {
	M00, M01, M02, M03 float64
	M10, M11, M12, M13 float64
	M20, M21, M22, M23 float64
	M30, M31, M32, M33 float64
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		M00: 1, M11: 1, M22: 1, M33: 1,
	}
}

func (m Matrix4) row(i int) Vector4 {
	switch i {
	case 0:
		return Vector4{m.M00, m.M01, m.M02, m.M03}
	case 1:
		return Vector4{m.M10, m.M11, m.M12, m.M13}
	case 2:
		return Vector4{m.M20, m.M21, m.M22, m.M23}
	default:
		return Vector4{m.M30, m.M31, m.M32, m.M33}
	}
}

func (m Matrix4) column(j int) Vector4 {
	switch j {
	case 0:
		return Vector4{m.M00, m.M10, m.M20, m.M30}
	case 1:
		return Vector4{m.M01, m.M11, m.M21, m.M31}
	case 2:
		return Vector4{m.M02, m.M12, m.M22, m.M32}
	default:
		return Vector4{m.M03, m.M13, m.M23, m.M33}
	}
}

// Mul returns the matrix product m*o, C[i][j] = sum_k m[i][k]*o[k][j].
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var r Matrix4
	rows := [4]Vector4{m.row(0), m.row(1), m.row(2), m.row(3)}
	cols := [4]Vector4{o.column(0), o.column(1), o.column(2), o.column(3)}

	set := func(i, j int, v float64) {
		switch i*4 + j {
		case 0:
			r.M00 = v
		case 1:
			r.M01 = v
		case 2:
			r.M02 = v
		case 3:
			r.M03 = v
		case 4:
			r.M10 = v
		case 5:
			r.M11 = v
		case 6:
			r.M12 = v
		case 7:
			r.M13 = v
		case 8:
			r.M20 = v
		case 9:
			r.M21 = v
		case 10:
			r.M22 = v
		case 11:
			r.M23 = v
		case 12:
			r.M30 = v
		case 13:
			r.M31 = v
		case 14:
			r.M32 = v
		case 15:
			r.M33 = v
		}
	}

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			set(i, j, rows[i].Dot(cols[j]))
		}
	}
	return r
}

// MulVector4 returns m*v.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{
		X: m.row(0).Dot(v),
		Y: m.row(1).Dot(v),
		Z: m.row(2).Dot(v),
		W: m.row(3).Dot(v),
	}
}
