package net_structures

import "fmt"

// Recipe is a tagged union over the recipe kinds the crafting book can
// display. The discriminator is the initial type string (e.g.
// "minecraft:crafting_shapeless"), followed by a recipe id string, then a
// kind-specific body.
//
// Wire format:
//
//	┌───────────────────┬──────────────┬─────────────────────────────────┐
//	│  Type (String)    │  ID (String)│  Body (kind-specific)           │
//	└───────────────────┴──────────────┴─────────────────────────────────┘
type Recipe struct {
	Type String
	ID   String
	Body RecipeBody
}

// RecipeBody is the kind-specific payload following a Recipe's type and id.
type RecipeBody interface {
	Decode(buf *PacketBuffer) error
	Encode(buf *PacketBuffer) error
}

// UnknownRecipeType is returned when a recipe's type string doesn't match any
// known kind. Non-fatal: callers should skip the offending recipe.
type UnknownRecipeType struct {
	Type string
}

func (e *UnknownRecipeType) Error() string {
	return fmt.Sprintf("unknown recipe type: %s", e.Type)
}

// RecipeIngredient is a list of acceptable slots for one crafting input.
type RecipeIngredient = PrefixedArray[Slot]

func decodeIngredient(buf *PacketBuffer) (RecipeIngredient, error) {
	var ing RecipeIngredient
	err := ing.DecodeWith(buf, func(b *PacketBuffer) (Slot, error) {
		return b.ReadSlot()
	})
	return ing, err
}

func encodeIngredient(buf *PacketBuffer, ing RecipeIngredient) error {
	return ing.EncodeWith(buf, func(b *PacketBuffer, s Slot) error {
		return b.WriteSlot(s)
	})
}

// CraftingShapelessRecipe is "minecraft:crafting_shapeless".
type CraftingShapelessRecipe struct {
	Group       String
	Category    VarInt
	Ingredients PrefixedArray[RecipeIngredient]
	Result      Slot
}

func (r *CraftingShapelessRecipe) Decode(buf *PacketBuffer) error {
	var err error
	if r.Group, err = buf.ReadString(32767); err != nil {
		return err
	}
	if r.Category, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if err := r.Ingredients.DecodeWith(buf, decodeIngredient); err != nil {
		return err
	}
	return r.Result.Decode(buf)
}

func (r *CraftingShapelessRecipe) Encode(buf *PacketBuffer) error {
	if err := buf.WriteString(r.Group); err != nil {
		return err
	}
	if err := buf.WriteVarInt(r.Category); err != nil {
		return err
	}
	if err := r.Ingredients.EncodeWith(buf, encodeIngredient); err != nil {
		return err
	}
	return r.Result.Encode(buf)
}

// CraftingShapedRecipe is "minecraft:crafting_shaped".
type CraftingShapedRecipe struct {
	Width, Height    VarInt
	Group            String
	Category         VarInt
	Ingredients      PrefixedArray[RecipeIngredient]
	Result           Slot
	ShowNotification Boolean
}

func (r *CraftingShapedRecipe) Decode(buf *PacketBuffer) error {
	var err error
	if r.Width, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if r.Height, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if r.Group, err = buf.ReadString(32767); err != nil {
		return err
	}
	if r.Category, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if err := r.Ingredients.DecodeWith(buf, decodeIngredient); err != nil {
		return err
	}
	if err := r.Result.Decode(buf); err != nil {
		return err
	}
	r.ShowNotification, err = buf.ReadBool()
	return err
}

func (r *CraftingShapedRecipe) Encode(buf *PacketBuffer) error {
	if err := buf.WriteVarInt(r.Width); err != nil {
		return err
	}
	if err := buf.WriteVarInt(r.Height); err != nil {
		return err
	}
	if err := buf.WriteString(r.Group); err != nil {
		return err
	}
	if err := buf.WriteVarInt(r.Category); err != nil {
		return err
	}
	if err := r.Ingredients.EncodeWith(buf, encodeIngredient); err != nil {
		return err
	}
	if err := r.Result.Encode(buf); err != nil {
		return err
	}
	return buf.WriteBool(r.ShowNotification)
}

// CraftingSpecialRecipe covers the single-category special crafting recipes
// (armor dye, book cloning, firework star, decorated pot, ...).
type CraftingSpecialRecipe struct {
	Category VarInt
}

func (r *CraftingSpecialRecipe) Decode(buf *PacketBuffer) error {
	var err error
	r.Category, err = buf.ReadVarInt()
	return err
}

func (r *CraftingSpecialRecipe) Encode(buf *PacketBuffer) error {
	return buf.WriteVarInt(r.Category)
}

// SmeltingLikeRecipe covers smelting, blasting, smoking and campfire cooking.
type SmeltingLikeRecipe struct {
	Group       String
	Category    VarInt
	Ingredient  RecipeIngredient
	Result      Slot
	Experience  Float32
	CookingTime VarInt
}

func (r *SmeltingLikeRecipe) Decode(buf *PacketBuffer) error {
	var err error
	if r.Group, err = buf.ReadString(32767); err != nil {
		return err
	}
	if r.Category, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if r.Ingredient, err = decodeIngredient(buf); err != nil {
		return err
	}
	if err := r.Result.Decode(buf); err != nil {
		return err
	}
	if r.Experience, err = buf.ReadFloat32(); err != nil {
		return err
	}
	r.CookingTime, err = buf.ReadVarInt()
	return err
}

func (r *SmeltingLikeRecipe) Encode(buf *PacketBuffer) error {
	if err := buf.WriteString(r.Group); err != nil {
		return err
	}
	if err := buf.WriteVarInt(r.Category); err != nil {
		return err
	}
	if err := encodeIngredient(buf, r.Ingredient); err != nil {
		return err
	}
	if err := r.Result.Encode(buf); err != nil {
		return err
	}
	if err := buf.WriteFloat32(r.Experience); err != nil {
		return err
	}
	return buf.WriteVarInt(r.CookingTime)
}

// StonecuttingRecipe is "minecraft:stonecutting".
type StonecuttingRecipe struct {
	Group      String
	Ingredient RecipeIngredient
	Result     Slot
}

func (r *StonecuttingRecipe) Decode(buf *PacketBuffer) error {
	var err error
	if r.Group, err = buf.ReadString(32767); err != nil {
		return err
	}
	if r.Ingredient, err = decodeIngredient(buf); err != nil {
		return err
	}
	return r.Result.Decode(buf)
}

func (r *StonecuttingRecipe) Encode(buf *PacketBuffer) error {
	if err := buf.WriteString(r.Group); err != nil {
		return err
	}
	if err := encodeIngredient(buf, r.Ingredient); err != nil {
		return err
	}
	return r.Result.Encode(buf)
}

// SmithingTransformRecipe is "minecraft:smithing_transform".
type SmithingTransformRecipe struct {
	Template, Base, Addition RecipeIngredient
	Result                   Slot
}

func (r *SmithingTransformRecipe) Decode(buf *PacketBuffer) error {
	var err error
	if r.Template, err = decodeIngredient(buf); err != nil {
		return err
	}
	if r.Base, err = decodeIngredient(buf); err != nil {
		return err
	}
	if r.Addition, err = decodeIngredient(buf); err != nil {
		return err
	}
	return r.Result.Decode(buf)
}

func (r *SmithingTransformRecipe) Encode(buf *PacketBuffer) error {
	if err := encodeIngredient(buf, r.Template); err != nil {
		return err
	}
	if err := encodeIngredient(buf, r.Base); err != nil {
		return err
	}
	if err := encodeIngredient(buf, r.Addition); err != nil {
		return err
	}
	return r.Result.Encode(buf)
}

// SmithingTrimRecipe is "minecraft:smithing_trim".
type SmithingTrimRecipe struct {
	Template, Base, Addition RecipeIngredient
}

func (r *SmithingTrimRecipe) Decode(buf *PacketBuffer) error {
	var err error
	if r.Template, err = decodeIngredient(buf); err != nil {
		return err
	}
	if r.Base, err = decodeIngredient(buf); err != nil {
		return err
	}
	r.Addition, err = decodeIngredient(buf)
	return err
}

func (r *SmithingTrimRecipe) Encode(buf *PacketBuffer) error {
	if err := encodeIngredient(buf, r.Template); err != nil {
		return err
	}
	if err := encodeIngredient(buf, r.Base); err != nil {
		return err
	}
	return encodeIngredient(buf, r.Addition)
}

var craftingSpecialTypes = map[string]bool{
	"minecraft:crafting_special_armordye":          true,
	"minecraft:crafting_special_bookcloning":       true,
	"minecraft:crafting_special_mapcloning":        true,
	"minecraft:crafting_special_mapextending":      true,
	"minecraft:crafting_special_firework_rocket":   true,
	"minecraft:crafting_special_firework_star":     true,
	"minecraft:crafting_special_firework_star_fade": true,
	"minecraft:crafting_special_repairitem":        true,
	"minecraft:crafting_special_tippedarrow":       true,
	"minecraft:crafting_special_bannerduplicate":   true,
	"minecraft:crafting_special_shielddecoration":  true,
	"minecraft:crafting_special_shulkerboxcoloring": true,
	"minecraft:crafting_special_suspiciousstew":    true,
	"minecraft:crafting_decorated_pot":             true,
}

var smeltingLikeTypes = map[string]bool{
	"minecraft:smelting":        true,
	"minecraft:blasting":        true,
	"minecraft:smoking":         true,
	"minecraft:campfire_cooking": true,
}

func newRecipeBody(typ string) (RecipeBody, error) {
	switch {
	case typ == "minecraft:crafting_shapeless":
		return &CraftingShapelessRecipe{}, nil
	case typ == "minecraft:crafting_shaped":
		return &CraftingShapedRecipe{}, nil
	case craftingSpecialTypes[typ]:
		return &CraftingSpecialRecipe{}, nil
	case smeltingLikeTypes[typ]:
		return &SmeltingLikeRecipe{}, nil
	case typ == "minecraft:stonecutting":
		return &StonecuttingRecipe{}, nil
	case typ == "minecraft:smithing_transform":
		return &SmithingTransformRecipe{}, nil
	case typ == "minecraft:smithing_trim":
		return &SmithingTrimRecipe{}, nil
	default:
		return nil, &UnknownRecipeType{Type: typ}
	}
}

// Decode reads a Recipe from the buffer. Returns UnknownRecipeType
// (non-fatal) for an unrecognized type tag.
func (r *Recipe) Decode(buf *PacketBuffer) error {
	var err error
	if r.Type, err = buf.ReadString(64); err != nil {
		return fmt.Errorf("failed to read recipe type: %w", err)
	}
	if r.ID, err = buf.ReadString(64); err != nil {
		return fmt.Errorf("failed to read recipe id: %w", err)
	}
	r.Body, err = newRecipeBody(string(r.Type))
	if err != nil {
		return err
	}
	if err := r.Body.Decode(buf); err != nil {
		return fmt.Errorf("failed to read recipe body (%s): %w", r.Type, err)
	}
	return nil
}

// Encode writes a Recipe to the buffer.
func (r *Recipe) Encode(buf *PacketBuffer) error {
	if err := buf.WriteString(r.Type); err != nil {
		return fmt.Errorf("failed to write recipe type: %w", err)
	}
	if err := buf.WriteString(r.ID); err != nil {
		return fmt.Errorf("failed to write recipe id: %w", err)
	}
	if err := r.Body.Encode(buf); err != nil {
		return fmt.Errorf("failed to write recipe body (%s): %w", r.Type, err)
	}
	return nil
}
