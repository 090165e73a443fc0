package domain

// CREATE TABLE public.product_similarity (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id_1     TEXT NOT NULL,
//     product_id_2     TEXT NOT NULL,
//     similarity_score NUMERIC NOT NULL
// );

// SimilarityEdge is a directed, precomputed relation between two products.
// The table is owned by an upstream batch process; this service only reads it.
type SimilarityEdge struct {
	ID         uint64  `gorm:"primaryKey;autoIncrement" json:"-"`
	SourceCode string  `gorm:"column:product_id_1;index;not null" json:"source_code"`
	TargetCode string  `gorm:"column:product_id_2;not null" json:"target_code"`
	Score      float64 `gorm:"column:similarity_score;type:numeric;not null" json:"score"`
}

func (SimilarityEdge) TableName() string {
	return "product_similarity"
}
