package gam

import "context"

// FreeformKey is the key type for provisioned targeting keys.
const FreeformKey = "FREEFORM"

func (s *Service) TargetingKeyByName(ctx context.Context, name string) (*CustomTargetingKey, error) {
	return s.keys.find(ctx, Where(Bind("name", TextValue(name))), func(k *CustomTargetingKey) bool {
		return k.Name == name
	})
}

func (s *Service) CreateTargetingKey(ctx context.Context, name string) (*CustomTargetingKey, error) {
	key := CustomTargetingKey{Name: name, DisplayName: name, Type: FreeformKey}
	return s.keys.create(ctx, key, func(k *CustomTargetingKey) bool {
		return k.Name == name
	})
}

// TargetingValueByName looks a value up under one key.
func (s *Service) TargetingValueByName(ctx context.Context, keyID int64, name string) (*CustomTargetingValue, error) {
	stmt := Where(
		Bind("customTargetingKeyId", NumberValue(keyID)),
		Bind("name", TextValue(name)),
	)
	return s.values.find(ctx, stmt, func(v *CustomTargetingValue) bool {
		return v.Name == name && v.CustomTargetingKeyID == keyID
	})
}

func (s *Service) CreateTargetingValue(ctx context.Context, keyID int64, name string) (*CustomTargetingValue, error) {
	value := CustomTargetingValue{CustomTargetingKeyID: keyID, Name: name, DisplayName: name}
	return s.values.create(ctx, value, func(v *CustomTargetingValue) bool {
		return v.Name == name
	})
}
