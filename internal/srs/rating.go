// internal/srs/rating.go
package srs

import (
	"errors"
	"fmt"
)

// ErrInvalidRating は 0〜5 の範囲外の評価値が渡された場合のエラーです。
var ErrInvalidRating = errors.New("invalid rating")

// Rating は復習時の自己評価 (SM-2 の quality) です。
type Rating int

const (
	RatingBlackout          Rating = 0 // 全く思い出せない
	RatingIncorrect         Rating = 1 // 間違えたが、答えを見て思い出した
	RatingIncorrectFamiliar Rating = 2 // 間違えたが、答えに見覚えがあった
	RatingHard              Rating = 3 // 正解したが、かなり苦労した
	RatingGood              Rating = 4 // 少し迷ったが正解
	RatingEasy              Rating = 5 // 迷わず正解
)

// SuccessThreshold 以上の評価が「正解」として扱われる
const SuccessThreshold = RatingHard

// Bucket はセッション統計の集計区分です。
type Bucket string

const (
	BucketAgain Bucket = "again"
	BucketHard  Bucket = "hard"
	BucketGood  Bucket = "good"
	BucketEasy  Bucket = "easy"
)

// ParseRating は外部から受け取った整数を Rating に変換します。
// 範囲外の値は ErrInvalidRating を返します。
func ParseRating(v int) (Rating, error) {
	r := Rating(v)
	if !r.IsValid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRating, v)
	}
	return r, nil
}

func (r Rating) IsValid() bool {
	return r >= RatingBlackout && r <= RatingEasy
}

func (r Rating) IsSuccess() bool {
	return r >= SuccessThreshold
}

// Bucket は評価値を again/hard/good/easy のいずれかに振り分けます。
// 0〜2 はすべて again です。
func (r Rating) Bucket() Bucket {
	switch {
	case r < SuccessThreshold:
		return BucketAgain
	case r == RatingHard:
		return BucketHard
	case r == RatingGood:
		return BucketGood
	default:
		return BucketEasy
	}
}

func (r Rating) String() string {
	if !r.IsValid() {
		return fmt.Sprintf("Rating(%d)", int(r))
	}
	return fmt.Sprintf("%d(%s)", int(r), r.Bucket())
}
