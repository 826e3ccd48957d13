package model

// TrainModel mirrors the 'trains' table. Rows are seeded operationally; the
// service only reads them.
type TrainModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	TrainNo       string `gorm:"type:varchar(20);unique;not null"`
	TrainName     string `gorm:"type:varchar(100);not null"`
	FromCity      string `gorm:"type:varchar(100);not null"`
	ToCity        string `gorm:"type:varchar(100);not null"`
	NoOfSeats     int
	ACPrice       int64  `gorm:"column:ac_price"`
	NonACPrice    int64  `gorm:"column:non_ac_price"`
	DepartureTime string `gorm:"type:varchar(20)"`
	ImageURL      string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (TrainModel) TableName() string {
	return "trains"
}
