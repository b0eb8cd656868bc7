// Copyright 2026 vmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec

import "github.com/go-vmath/vmath/lane"

// Bitwise operations are free functions rather than methods: a method set
// cannot narrow the element constraint of its receiver, and these must be
// rejected for floating-point element types at compile time.

// And2 returns the lane-wise AND of a and b.
func And2[T lane.Integers](a, b Vec2[T]) Vec2[T] {
	var dst Vec2[T]
	lane.And(dst[:], a[:], b[:])
	return dst
}

// Or2 returns the lane-wise OR of a and b.
func Or2[T lane.Integers](a, b Vec2[T]) Vec2[T] {
	var dst Vec2[T]
	lane.Or(dst[:], a[:], b[:])
	return dst
}

// Xor2 returns the lane-wise XOR of a and b.
func Xor2[T lane.Integers](a, b Vec2[T]) Vec2[T] {
	var dst Vec2[T]
	lane.Xor(dst[:], a[:], b[:])
	return dst
}

// Not2 returns the lane-wise complement of v.
func Not2[T lane.Integers](v Vec2[T]) Vec2[T] {
	var dst Vec2[T]
	lane.Not(dst[:], v[:])
	return dst
}

// And3 returns the lane-wise AND of a and b.
func And3[T lane.Integers](a, b Vec3[T]) Vec3[T] {
	var dst Vec3[T]
	lane.And(dst[:], a[:], b[:])
	return dst
}

// Or3 returns the lane-wise OR of a and b.
func Or3[T lane.Integers](a, b Vec3[T]) Vec3[T] {
	var dst Vec3[T]
	lane.Or(dst[:], a[:], b[:])
	return dst
}

// Xor3 returns the lane-wise XOR of a and b.
func Xor3[T lane.Integers](a, b Vec3[T]) Vec3[T] {
	var dst Vec3[T]
	lane.Xor(dst[:], a[:], b[:])
	return dst
}

// Not3 returns the lane-wise complement of v.
func Not3[T lane.Integers](v Vec3[T]) Vec3[T] {
	var dst Vec3[T]
	lane.Not(dst[:], v[:])
	return dst
}

// And4 returns the lane-wise AND of a and b.
func And4[T lane.Integers](a, b Vec4[T]) Vec4[T] {
	var dst Vec4[T]
	lane.And(dst[:], a[:], b[:])
	return dst
}

// Or4 returns the lane-wise OR of a and b.
func Or4[T lane.Integers](a, b Vec4[T]) Vec4[T] {
	var dst Vec4[T]
	lane.Or(dst[:], a[:], b[:])
	return dst
}

// Xor4 returns the lane-wise XOR of a and b.
func Xor4[T lane.Integers](a, b Vec4[T]) Vec4[T] {
	var dst Vec4[T]
	lane.Xor(dst[:], a[:], b[:])
	return dst
}

// Not4 returns the lane-wise complement of v.
func Not4[T lane.Integers](v Vec4[T]) Vec4[T] {
	var dst Vec4[T]
	lane.Not(dst[:], v[:])
	return dst
}

// And5 returns the lane-wise AND of a and b.
func And5[T lane.Integers](a, b Vec5[T]) Vec5[T] {
	var dst Vec5[T]
	lane.And(dst[:], a[:], b[:])
	return dst
}

// Or5 returns the lane-wise OR of a and b.
func Or5[T lane.Integers](a, b Vec5[T]) Vec5[T] {
	var dst Vec5[T]
	lane.Or(dst[:], a[:], b[:])
	return dst
}

// Xor5 returns the lane-wise XOR of a and b.
func Xor5[T lane.Integers](a, b Vec5[T]) Vec5[T] {
	var dst Vec5[T]
	lane.Xor(dst[:], a[:], b[:])
	return dst
}

// Not5 returns the lane-wise complement of v.
func Not5[T lane.Integers](v Vec5[T]) Vec5[T] {
	var dst Vec5[T]
	lane.Not(dst[:], v[:])
	return dst
}
