package entity

// RestaurantRef คือ snapshot ของร้านตอนหยิบของลงตะกร้า (denormalized)
type RestaurantRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// CartLine หนึ่งเมนูในตะกร้า — ราคา/ชื่อเป็น snapshot ตอน add ไม่ refresh ตาม catalog
type CartLine struct {
	MenuID     uint          `json:"menuId"`
	Name       string        `json:"name"`
	Price      int64         `json:"price"` // หน่วยสตางค์
	Picture    string        `json:"picture,omitempty"`
	Qty        int           `json:"qty"` // >= 1 เสมอ (ศูนย์ = ลบทิ้ง)
	Restaurant RestaurantRef `json:"restaurant"`
}

// Cart ตะกร้าของ user หนึ่งคน เก็บเรียงลำดับตามตอน add
type Cart struct {
	Lines []CartLine `json:"lines"`

	// UI flag ของหน้า panel — ไม่ persist ลง storage
	IsOpen bool `json:"-"`
}

func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Price * int64(l.Qty)
	}
	return total
}

func (c *Cart) ItemCount() int {
	var count int
	for _, l := range c.Lines {
		count += l.Qty
	}
	return count
}

// FindLine หา index ของ line ตาม menuID, คืน -1 ถ้าไม่เจอ
func (c *Cart) FindLine(menuID uint) int {
	for i := range c.Lines {
		if c.Lines[i].MenuID == menuID {
			return i
		}
	}
	return -1
}

// PrimaryRestaurant คือร้านของ line แรก (ถือเป็น "ร้านของตะกร้า") — nil ถ้าตะกร้าว่าง
func (c *Cart) PrimaryRestaurant() *RestaurantRef {
	if len(c.Lines) == 0 {
		return nil
	}
	r := c.Lines[0].Restaurant
	return &r
}

// RestaurantGroup กลุ่มของ line ที่มาจากร้านเดียวกัน
type RestaurantGroup struct {
	Restaurant RestaurantRef `json:"restaurant"`
	Lines      []CartLine    `json:"lines"`
	Subtotal   int64         `json:"subtotal"`
}

// GroupedByRestaurant แบ่ง line ตามร้าน เรียงตามลำดับที่เจอครั้งแรก
// ปกติ flow จะมีร้านเดียว — มีไว้กันเคสตะกร้าปนร้าน
func (c *Cart) GroupedByRestaurant() []RestaurantGroup {
	groups := make([]RestaurantGroup, 0, 1)
	index := make(map[uint]int)
	for _, l := range c.Lines {
		i, ok := index[l.Restaurant.ID]
		if !ok {
			i = len(groups)
			index[l.Restaurant.ID] = i
			groups = append(groups, RestaurantGroup{Restaurant: l.Restaurant})
		}
		groups[i].Lines = append(groups[i].Lines, l)
		groups[i].Subtotal += l.Price * int64(l.Qty)
	}
	return groups
}
