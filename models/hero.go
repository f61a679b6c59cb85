package models

type Hero struct {
	ID         uint        `gorm:"primaryKey"`
	Name       string      `gorm:"size:100"`
	SuperName  string      `gorm:"size:100"`
	HeroPowers []HeroPower `gorm:"foreignKey:HeroID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Hero) TableName() string {
	return "heroes"
}
